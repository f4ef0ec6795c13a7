package transit

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"pondilore/db"
	"pondilore/models"
	"pondilore/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/transit
func GetTransit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := strings.ToLower(r.URL.Query().Get("category")); category != "" {
		filter["category"] = category
	}
	if sub := strings.ToLower(r.URL.Query().Get("sub")); sub != "" {
		filter["sub_category"] = sub
	}

	opts := options.Find().SetSort(bson.D{{Key: "transitid", Value: 1}})
	cursor, err := db.TransitCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching transit options")
		return
	}
	defer cursor.Close(ctx)

	var items []models.TransitItem
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching transit options")
		return
	}
	if items == nil {
		items = []models.TransitItem{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/transit/item/:id
func GetTransitByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.TransitItem
	err := db.TransitCollection.FindOne(ctx, bson.M{"transitid": ps.ByName("id")}).Decode(&item)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Transit option not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// POST /api/transit/seed — wipe and re-seed the collection from the
// built-in records.
func SeedTransit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if _, err := db.TransitCollection.DeleteMany(ctx, bson.M{}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error clearing transit data")
		return
	}

	docs := make([]interface{}, 0, len(seedItems))
	for _, item := range seedItems {
		docs = append(docs, item)
	}
	if _, err := db.TransitCollection.InsertMany(ctx, docs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding transit data")
		return
	}

	log.Printf("transit collection re-seeded with %d records", len(seedItems))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"seeded": len(seedItems)})
}
