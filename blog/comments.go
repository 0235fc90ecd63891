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

func GetComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.BlogPost
	if err := db.BlogPostsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&post); err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	comments, err := utils.FindAndDecode[models.BlogComment](ctx, db.BlogCommentsCollection,
		bson.M{"postid": post.PostID}, opts)
	if err != nil {
		log.Println("GetComments Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "comments": comments})
}

func CreateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var post models.BlogPost
	if err := db.BlogPostsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&post); err == mongo.ErrNoDocuments {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("CreateComment FindOne error:", err)
		http.Error(w, "Failed to create comment", http.StatusInternalServerError)
		return
	}

	var comment models.BlogComment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil || comment.Content == "" {
		http.Error(w, "Invalid comment payload", http.StatusBadRequest)
		return
	}

	comment.CommentID = utils.GetUUID()
	comment.PostID = post.PostID
	comment.UserID = userID
	comment.CreatedAt = time.Now()

	if _, err := db.BlogCommentsCollection.InsertOne(ctx, comment); err != nil {
		log.Println("CreateComment InsertOne error:", err)
		http.Error(w, "Failed to create comment", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

func DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	roles, _ := r.Context().Value(globals.RoleKey).([]string)

	filter := bson.M{"commentid": ps.ByName("commentid")}
	if !utils.HasRole(roles, "admin") {
		filter["userId"] = userID
	}

	res, err := db.BlogCommentsCollection.DeleteOne(ctx, filter)
	if err != nil {
		log.Println("DeleteComment DeleteOne error:", err)
		http.Error(w, "Failed to delete comment", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
