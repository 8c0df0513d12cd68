package memory

import (
	"time"

	"github.com/docdex/docdex/internal/domain/document"
)

// DemoDocuments returns the sample corpus loaded when demo seeding is
// enabled, in natural (newest-first) order.
func DemoDocuments() []document.Document {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	return []document.Document{
		document.Reconstruct(document.Fields{
			ID:         "1",
			Name:       "Project Specifications.pdf",
			Type:       "pdf",
			Size:       2048576,
			Category:   "Specifications",
			Tags:       []string{"project", "requirements"},
			UploadedAt: day(15),
			ModifiedAt: day(15),
			Author:     "John Doe",
			ProjectID:  "proj-1",
			URL:        "https://example.com/doc1.pdf",
		}),
		document.Reconstruct(document.Fields{
			ID:         "2",
			Name:       "Architectural Drawings.dwg",
			Type:       "dwg",
			Size:       5242880,
			Category:   "Drawings",
			Tags:       []string{"architecture", "design"},
			UploadedAt: day(14),
			ModifiedAt: day(14),
			Author:     "Jane Smith",
			ProjectID:  "proj-1",
			Favorite:   true,
			URL:        "https://example.com/doc2.dwg",
		}),
		document.Reconstruct(document.Fields{
			ID:         "3",
			Name:       "Meeting Minutes.docx",
			Type:       "docx",
			Size:       102400,
			Category:   "Documentation",
			Tags:       []string{"meeting", "notes"},
			UploadedAt: day(13),
			ModifiedAt: day(13),
			Author:     "Mike Johnson",
			ProjectID:  "proj-2",
			URL:        "https://example.com/doc3.docx",
		}),
	}
}
