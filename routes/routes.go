package routes

import (
	"net/http"

	"petalia/auth"
	"petalia/blog"
	"petalia/bouquets"
	"petalia/cart"
	"petalia/categories"
	"petalia/delivery"
	"petalia/filemgr"
	"petalia/middleware"
	"petalia/orderhub"
	"petalia/orders"
	"petalia/products"
	"petalia/ratelim"
	"petalia/settings"
	"petalia/stores"
	"petalia/testimonials"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
	router.ServeFiles("/static/categorypic/*filepath", http.Dir("static/categorypic"))
	router.ServeFiles("/static/flowerpic/*filepath", http.Dir("static/flowerpic"))
	router.ServeFiles("/static/testimonialpic/*filepath", http.Dir("static/testimonialpic"))
	router.ServeFiles("/static/bannerpic/*filepath", http.Dir("static/bannerpic"))
	router.ServeFiles("/static/blogpic/*filepath", http.Dir("static/blogpic"))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler) {
	router.POST("/api/auth/register", ratelim.RateLimit(h.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(h.RefreshToken))

	router.POST("/api/auth/request-otp", ratelim.RateLimit(h.RequestOTP))
	router.POST("/api/auth/verify-otp", ratelim.RateLimit(h.VerifyOTP))
}

func AddCartRoutes(router *httprouter.Router, carts *cart.Service) {
	router.GET("/api/cart", middleware.OptionalAuth(carts.GetCart))
	router.POST("/api/cart/items", ratelim.RateLimit(middleware.OptionalAuth(carts.AddItem)))
	router.PUT("/api/cart/items/:productid", ratelim.RateLimit(middleware.OptionalAuth(carts.UpdateItem)))
	router.DELETE("/api/cart/items/:productid", ratelim.RateLimit(middleware.OptionalAuth(carts.RemoveItem)))
	router.DELETE("/api/cart", middleware.OptionalAuth(carts.ClearCart))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", ratelim.RateLimit(products.GetProducts))
	router.GET("/api/products/:productid", products.GetProduct)
	router.POST("/api/products", middleware.RequireAdmin(products.CreateProduct))
	router.PUT("/api/products/:productid", middleware.RequireAdmin(products.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.RequireAdmin(products.DeleteProduct))
}

func AddCategoryRoutes(router *httprouter.Router) {
	router.GET("/api/categories", categories.GetCategories)
	router.GET("/api/categories/:categoryid", categories.GetCategory)
	router.POST("/api/categories", middleware.RequireAdmin(categories.CreateCategory))
	router.PUT("/api/categories/:categoryid", middleware.RequireAdmin(categories.UpdateCategory))
	router.DELETE("/api/categories/:categoryid", middleware.RequireAdmin(categories.DeleteCategory))
}

func AddBouquetRoutes(router *httprouter.Router, h *bouquets.Handler) {
	router.GET("/api/bouquets/flowers", bouquets.GetFlowers)
	router.GET("/api/bouquets/wrappings", bouquets.GetWrappings)
	router.GET("/api/bouquets/additions", bouquets.GetAdditions)

	router.POST("/api/bouquets", ratelim.RateLimit(middleware.Authenticate(h.CreateBouquet)))
	router.GET("/api/bouquets/mine", middleware.Authenticate(h.GetMyBouquets))
	router.POST("/api/bouquets/bouquet/:bouquetid/cart", ratelim.RateLimit(middleware.Authenticate(h.AddToCart)))

	router.POST("/api/bouquets/flowers", middleware.RequireAdmin(bouquets.CreateFlower))
	router.PUT("/api/bouquets/flowers/:flowerid", middleware.RequireAdmin(bouquets.UpdateFlower))
	router.DELETE("/api/bouquets/flowers/:flowerid", middleware.RequireAdmin(bouquets.DeleteFlower))
	router.POST("/api/bouquets/wrappings", middleware.RequireAdmin(bouquets.CreateWrapping))
	router.DELETE("/api/bouquets/wrappings/:wrappingid", middleware.RequireAdmin(bouquets.DeleteWrapping))
	router.POST("/api/bouquets/additions", middleware.RequireAdmin(bouquets.CreateAddition))
	router.DELETE("/api/bouquets/additions/:additionid", middleware.RequireAdmin(bouquets.DeleteAddition))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler) {
	router.POST("/api/orders", ratelim.RateLimit(middleware.Authenticate(h.PlaceOrder)))
	router.GET("/api/orders/mine", middleware.Authenticate(h.GetMyOrders))
	router.GET("/api/orders/order/:orderid", middleware.Authenticate(h.GetOrder))
	router.GET("/api/orders/order/:orderid/qr", middleware.Authenticate(h.PickupQR))
	router.GET("/api/orders/order/:orderid/receipt", middleware.Authenticate(h.Receipt))

	router.GET("/api/admin/orders", middleware.RequireAdmin(h.AdminListOrders))
	router.PUT("/api/admin/orders/:orderid", middleware.RequireAdmin(h.AdminUpdateOrder))
}

func AddBlogRoutes(router *httprouter.Router) {
	router.GET("/api/blog/posts", ratelim.RateLimit(middleware.OptionalAuth(blog.GetPosts)))
	router.GET("/api/blog/posts/:slug", blog.GetPostBySlug)
	router.GET("/api/blog/tags", blog.GetTags)
	router.POST("/api/blog/posts", middleware.RequireAdmin(blog.CreatePost))
	router.PUT("/api/blog/posts/:slug", middleware.RequireAdmin(blog.UpdatePost))
	router.DELETE("/api/blog/posts/:slug", middleware.RequireAdmin(blog.DeletePost))

	router.GET("/api/blog/posts/:slug/comments", blog.GetComments)
	router.POST("/api/blog/posts/:slug/comments", ratelim.RateLimit(middleware.Authenticate(blog.CreateComment)))
	router.DELETE("/api/blog/posts/:slug/comments/:commentid", middleware.Authenticate(blog.DeleteComment))
}

func AddTestimonialRoutes(router *httprouter.Router) {
	router.GET("/api/testimonials", testimonials.GetTestimonials)
	router.POST("/api/testimonials", middleware.RequireAdmin(testimonials.CreateTestimonial))
	router.PUT("/api/testimonials/:testimonialid", middleware.RequireAdmin(testimonials.UpdateTestimonial))
	router.DELETE("/api/testimonials/:testimonialid", middleware.RequireAdmin(testimonials.DeleteTestimonial))
}

func AddStoreRoutes(router *httprouter.Router) {
	router.GET("/api/stores", stores.GetStores)
	router.POST("/api/stores", middleware.RequireAdmin(stores.CreateStore))
	router.PUT("/api/stores/:storeid", middleware.RequireAdmin(stores.UpdateStore))
	router.DELETE("/api/stores/:storeid", middleware.RequireAdmin(stores.DeleteStore))
}

func AddDeliveryRoutes(router *httprouter.Router) {
	router.GET("/api/delivery/zones", delivery.GetZones)
	router.POST("/api/delivery/zones", middleware.RequireAdmin(delivery.CreateZone))
	router.DELETE("/api/delivery/zones/:zoneid", middleware.RequireAdmin(delivery.DeleteZone))

	router.GET("/api/delivery/options", delivery.GetOptions)
	router.POST("/api/delivery/options", middleware.RequireAdmin(delivery.CreateOption))
	router.DELETE("/api/delivery/options/:optionid", middleware.RequireAdmin(delivery.DeleteOption))

	router.GET("/api/payment-methods", delivery.GetPaymentMethods)
	router.POST("/api/payment-methods", middleware.RequireAdmin(delivery.CreatePaymentMethod))
	router.DELETE("/api/payment-methods/:methodid", middleware.RequireAdmin(delivery.DeletePaymentMethod))

	router.GET("/api/faq", delivery.GetFAQ)
	router.POST("/api/faq", middleware.RequireAdmin(delivery.CreateFAQ))
	router.DELETE("/api/faq/:faqid", middleware.RequireAdmin(delivery.DeleteFAQ))
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings", settings.GetSettings)
	router.PUT("/api/settings", middleware.RequireAdmin(settings.UpdateSettings))
}

func AddUploadRoutes(router *httprouter.Router) {
	router.POST("/api/uploads/:entity", ratelim.RateLimit(middleware.RequireAdmin(filemgr.UploadImage)))
}

// Order feed routes need the hub, so they are wired separately in main.
func AddOrderFeedRoutes(router *httprouter.Router, hub *orderhub.Hub) {
	router.GET("/ws/orders", hub.Serve)
}
