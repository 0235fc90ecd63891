package models

import "time"

type Testimonial struct {
	TestimonialID string    `json:"testimonialId" bson:"testimonialId"`
	Author        string    `json:"author" bson:"author"`
	Quote         string    `json:"quote" bson:"quote"`
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	Rating        int       `json:"rating" bson:"rating"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

type Store struct {
	StoreID   string    `json:"storeId" bson:"storeId"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address" bson:"address"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Hours     string    `json:"hours,omitempty" bson:"hours,omitempty"`
	Lat       float64   `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng       float64   `json:"lng,omitempty" bson:"lng,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type DeliveryZone struct {
	ZoneID string  `json:"zoneId" bson:"zoneId"`
	Name   string  `json:"name" bson:"name" validate:"required"`
	Fee    float64 `json:"fee" bson:"fee" validate:"gte=0"`
	// kind discriminates documents in the shared delivery collection
	Kind string `json:"-" bson:"kind"`
}

type DeliveryOption struct {
	OptionID    string  `json:"optionId" bson:"optionId"`
	Name        string  `json:"name" bson:"name" validate:"required"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Fee         float64 `json:"fee" bson:"fee" validate:"gte=0"`
	Kind        string  `json:"-" bson:"kind"`
}

type PaymentMethodOption struct {
	MethodID string `json:"methodId" bson:"methodId"`
	Label    string `json:"label" bson:"label" validate:"required"`
	Enabled  bool   `json:"enabled" bson:"enabled"`
	Kind     string `json:"-" bson:"kind"`
}

type FAQEntry struct {
	FAQID    string `json:"faqId" bson:"faqId"`
	Question string `json:"question" bson:"question" validate:"required"`
	Answer   string `json:"answer" bson:"answer" validate:"required"`
	Position int    `json:"position" bson:"position"`
}

// SiteSettings is the singleton site configuration document.
type SiteSettings struct {
	ShopName     string    `json:"shopName" bson:"shopName" validate:"required"`
	Tagline      string    `json:"tagline,omitempty" bson:"tagline,omitempty"`
	HeroBanner   string    `json:"heroBanner,omitempty" bson:"heroBanner,omitempty"`
	ContactEmail string    `json:"contactEmail" bson:"contactEmail" validate:"required,email"`
	ContactPhone string    `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	Instagram    string    `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Facebook     string    `json:"facebook,omitempty" bson:"facebook,omitempty"`
	CurrencyCode string    `json:"currencyCode" bson:"currencyCode" validate:"required,len=3"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
