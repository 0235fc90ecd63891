package models

import "time"

type BlogPost struct {
	PostID    string    `json:"postid" bson:"postid"`
	Title     string    `json:"title" bson:"title"`
	Slug      string    `json:"slug" bson:"slug"`
	Content   string    `json:"content" bson:"content"`
	Thumb     string    `json:"thumb,omitempty" bson:"thumb,omitempty"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Published bool      `json:"published" bson:"published"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type BlogComment struct {
	CommentID string    `json:"commentid" bson:"commentid"`
	PostID    string    `json:"postid" bson:"postid"`
	UserID    string    `json:"userId" bson:"userId"`
	Author    string    `json:"author" bson:"author"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
