package filemgr

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"petalia/db"
	"petalia/globals"
	"petalia/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// Entities that accept image uploads, each with its own static dir.
var entityDirs = map[string]string{
	"product":     "./static/productpic",
	"category":    "./static/categorypic",
	"flower":      "./static/flowerpic",
	"testimonial": "./static/testimonialpic",
	"banner":      "./static/bannerpic",
	"blog":        "./static/blogpic",
}

var cld *cloudinary.Cloudinary

func init() {
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		var err error
		cld, err = cloudinary.NewFromURL(url)
		if err != nil {
			log.Println("Cloudinary init error, falling back to local storage:", err)
			cld = nil
		}
	}
}

type fileRecord struct {
	FileID     string    `bson:"fileId"`
	EntityType string    `bson:"entityType"`
	URL        string    `bson:"url"`
	Thumb      string    `bson:"thumb,omitempty"`
	UploadedBy string    `bson:"uploadedBy"`
	UploadedAt time.Time `bson:"uploadedAt"`
}

// UploadImage stores an image for the given entity type and answers with its
// URL. With Cloudinary configured the original goes there; otherwise both the
// original and a 300px thumbnail land in the entity's static dir.
func UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entityType := strings.ToLower(ps.ByName("entity"))
	dir, ok := entityDirs[entityType]
	if !ok {
		http.Error(w, "Unsupported entity type", http.StatusBadRequest)
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB limit
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := id + ext

	var fileURL, thumbURL string

	if cld != nil {
		resp, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
			Folder:   "petalia/" + entityType,
			PublicID: id,
		})
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}
		fileURL = resp.SecureURL
	} else {
		if err := utils.EnsureDir(dir); err != nil {
			http.Error(w, "Unable to save file", http.StatusInternalServerError)
			return
		}

		img, err := imaging.Decode(file)
		if err != nil {
			http.Error(w, "Unreadable image", http.StatusBadRequest)
			return
		}

		origPath := filepath.Join(dir, filename)
		if err := imaging.Save(img, origPath); err != nil {
			log.Println("UploadImage save error:", err)
			http.Error(w, "Unable to save file", http.StatusInternalServerError)
			return
		}

		thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
		thumbDir := filepath.Join(dir, "thumb")
		if err := utils.EnsureDir(thumbDir); err == nil {
			thumbName := id + ".jpg"
			if err := imaging.Save(thumb, filepath.Join(thumbDir, thumbName)); err != nil {
				log.Println("UploadImage thumbnail error:", err)
			} else {
				thumbURL = fmt.Sprintf("/static/%spic/thumb/%s", entityType, thumbName)
			}
		}

		fileURL = fmt.Sprintf("/static/%spic/%s", entityType, filename)
	}

	rec := fileRecord{
		FileID:     id,
		EntityType: entityType,
		URL:        fileURL,
		Thumb:      thumbURL,
		UploadedBy: userID,
		UploadedAt: time.Now(),
	}
	if _, err := db.FilesCollection.InsertOne(r.Context(), rec); err != nil {
		log.Println("UploadImage file record error:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"fileId": id,
		"url":    fileURL,
		"thumb":  thumbURL,
	})
}
