package redisstore

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/docdex/docdex/internal/domain/document"
)

// buildHashFields converts a Document into a flat map[string]string for HSET.
func buildHashFields(doc document.Document) map[string]string {
	tags, _ := json.Marshal(doc.Tags())
	return map[string]string{
		"name":        doc.Name(),
		"type":        doc.Type(),
		"size":        strconv.FormatInt(doc.Size(), 10),
		"category":    doc.Category(),
		"tags":        string(tags),
		"uploaded_at": doc.UploadedAt().UTC().Format(time.RFC3339Nano),
		"modified_at": doc.ModifiedAt().UTC().Format(time.RFC3339Nano),
		"author":      doc.Author(),
		"project_id":  doc.ProjectID(),
		"favorite":    strconv.FormatBool(doc.Favorite()),
		"archived":    strconv.FormatBool(doc.Archived()),
		"url":         doc.URL(),
		"thumbnail":   doc.Thumbnail(),
	}
}

// parseHashFields converts a flat hash map back into a Document.
func parseHashFields(id string, m map[string]string) document.Document {
	var tags []string
	_ = json.Unmarshal([]byte(m["tags"]), &tags)

	size, _ := strconv.ParseInt(m["size"], 10, 64)
	uploadedAt, _ := time.Parse(time.RFC3339Nano, m["uploaded_at"])
	modifiedAt, _ := time.Parse(time.RFC3339Nano, m["modified_at"])
	favorite, _ := strconv.ParseBool(m["favorite"])
	archived, _ := strconv.ParseBool(m["archived"])

	return document.Reconstruct(document.Fields{
		ID:         id,
		Name:       m["name"],
		Type:       m["type"],
		Size:       size,
		Category:   m["category"],
		Tags:       tags,
		UploadedAt: uploadedAt,
		ModifiedAt: modifiedAt,
		Author:     m["author"],
		ProjectID:  m["project_id"],
		Favorite:   favorite,
		Archived:   archived,
		URL:        m["url"],
		Thumbnail:  m["thumbnail"],
	})
}
