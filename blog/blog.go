package blog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"petalia/db"
	"petalia/globals"
	"petalia/models"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPosts lists published posts; ?tag= filters, admins see drafts with
// ?all=true.
func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"published": true}
	roles, _ := r.Context().Value(globals.RoleKey).([]string)
	if r.URL.Query().Get("all") == "true" && utils.HasRole(roles, "admin") {
		delete(filter, "published")
	}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		filter["tags"] = tag
	}

	skip, limit := utils.ParsePagination(r, 10, 50)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	posts, err := utils.FindAndDecode[models.BlogPost](ctx, db.BlogPostsCollection, filter, opts)
	if err != nil {
		log.Println("GetPosts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "posts": posts})
}

func GetPostBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.BlogPost
	err := db.BlogPostsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil || post.Title == "" || post.Content == "" {
		http.Error(w, "Invalid post payload", http.StatusBadRequest)
		return
	}

	post.PostID = utils.GetUUID()
	post.Slug = utils.Slugify(post.Title)
	post.CreatedBy = userID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	if _, err := db.BlogPostsCollection.InsertOne(ctx, post); err != nil {
		log.Println("CreatePost InsertOne error:", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

func UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(updates, "postid")
	delete(updates, "createdAt")
	delete(updates, "createdBy")
	if title, ok := updates["title"].(string); ok {
		updates["slug"] = utils.Slugify(title)
	}
	updates["updatedAt"] = time.Now()

	res, err := db.BlogPostsCollection.UpdateOne(ctx, bson.M{"slug": ps.ByName("slug")}, bson.M{"$set": updates})
	if err != nil {
		log.Println("UpdatePost UpdateOne error:", err)
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.BlogPost
	err := db.BlogPostsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("DeletePost FindOne error:", err)
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	if _, err := db.BlogPostsCollection.DeleteOne(ctx, bson.M{"postid": post.PostID}); err != nil {
		log.Println("DeletePost DeleteOne error:", err)
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	// comments go with the post
	if _, err := db.BlogCommentsCollection.DeleteMany(ctx, bson.M{"postid": post.PostID}); err != nil {
		log.Println("DeletePost comment cleanup error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetTags returns the distinct tag set over published posts.
func GetTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	raw, err := db.BlogPostsCollection.Distinct(ctx, "tags", bson.M{"published": true})
	if err != nil {
		log.Println("GetTags Distinct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tags")
		return
	}

	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "tags": tags})
}
