package mongo

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/driverportal/portal-api/internal/core/ports"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// containsFilter builds an AND of case-insensitive substring matches, one
// per non-blank value keyed by field path. User input is matched literally.
func containsFilter(fields map[string]string) bson.M {
	filter := bson.M{}
	for field, v := range fields {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		filter[field] = primitive.Regex{Pattern: regexp.QuoteMeta(v), Options: "i"}
	}
	return filter
}

func pageOptions(p ports.PageRequest) *options.FindOptions {
	return options.Find().
		SetSort(newestFirst).
		SetSkip(p.Offset()).
		SetLimit(int64(p.Size))
}

// duplicateKeyOn reports whether err is a unique index violation on the
// single-field index over field. Only the index name is matched; the
// message also echoes the duplicate value.
func duplicateKeyOn(err error, field string) bool {
	if !mongo.IsDuplicateKeyError(err) {
		return false
	}
	return strings.Contains(err.Error(), "index: "+field+"_1 ")
}
