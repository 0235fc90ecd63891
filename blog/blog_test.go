package blog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petalia/db"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// commandFilter digs the query document out of a started update or delete
// command.
func commandFilter(t *testing.T, cmd bson.Raw, field string) bson.Raw {
	t.Helper()
	vals, err := cmd.Lookup(field).Array().Values()
	if err != nil || len(vals) == 0 {
		t.Fatalf("no %s array in command %v", field, cmd)
	}
	return vals[0].Document().Lookup("q").Document()
}

func TestUpdatePostFiltersBySlug(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update", func(mt *mtest.T) {
		db.BlogPostsCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		router := httprouter.New()
		router.PUT("/api/blog/posts/:slug", UpdatePost)

		req := httptest.NewRequest(http.MethodPut, "/api/blog/posts/summer-care",
			strings.NewReader(`{"content":"updated"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200", rec.Code)
		}

		evt := mt.GetStartedEvent()
		if evt == nil {
			mt.Fatal("no update command captured")
		}
		q := commandFilter(mt.T, evt.Command, "updates")
		if got := q.Lookup("slug").StringValue(); got != "summer-care" {
			mt.Errorf("update filters on slug %q, want summer-care", got)
		}
	})
}

func TestDeletePostCascadesCommentsByPostID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete", func(mt *mtest.T) {
		db.BlogPostsCollection = mt.Coll
		db.BlogCommentsCollection = mt.Coll
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "postid", Value: "post1"},
				{Key: "slug", Value: "summer-care"},
				{Key: "title", Value: "Summer care"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		router := httprouter.New()
		router.DELETE("/api/blog/posts/:slug", DeletePost)

		req := httptest.NewRequest(http.MethodDelete, "/api/blog/posts/summer-care", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200", rec.Code)
		}

		find := mt.GetStartedEvent()
		if got := find.Command.Lookup("filter").Document().Lookup("slug").StringValue(); got != "summer-care" {
			mt.Errorf("post lookup filters on slug %q, want summer-care", got)
		}
		for _, name := range []string{"post delete", "comment cleanup"} {
			evt := mt.GetStartedEvent()
			if evt == nil {
				mt.Fatalf("no started event for %s", name)
			}
			q := commandFilter(mt.T, evt.Command, "deletes")
			if got := q.Lookup("postid").StringValue(); got != "post1" {
				mt.Errorf("%s filters on postid %q, want post1", name, got)
			}
		}
	})
}

func TestDeletePostUnknownSlugIs404(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing", func(mt *mtest.T) {
		db.BlogPostsCollection = mt.Coll
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		router := httprouter.New()
		router.DELETE("/api/blog/posts/:slug", DeletePost)

		req := httptest.NewRequest(http.MethodDelete, "/api/blog/posts/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			mt.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
