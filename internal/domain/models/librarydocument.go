// internal/domain/models/librarydocument.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LibraryDocument is one uploaded file record in the community library.
//
// OrganizationName is a display snapshot taken at write time; it is not
// kept in sync when the organization is later renamed. StoragePath is the
// blob's location and must track the actual uploaded file.
type LibraryDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	TitleCI          string             `bson:"title_ci" json:"-"`
	Description      string             `bson:"description" json:"description"`
	Category         string             `bson:"category" json:"category"` // reglamentos | manuales | formularios | avisos | otros
	OrganizationID   primitive.ObjectID `bson:"organization_id" json:"organizationId"`
	OrganizationName string             `bson:"organization_name" json:"organizationName"`

	FileURL     string `bson:"file_url" json:"fileUrl"`
	FileName    string `bson:"file_name" json:"fileName"`
	FileSize    int64  `bson:"file_size" json:"fileSize"`
	FileType    string `bson:"file_type" json:"fileType"`
	StoragePath string `bson:"storage_path" json:"storagePath"`

	Status string `bson:"status" json:"status"` // active | inactive

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// LibraryCategories lists the legal document categories.
var LibraryCategories = []string{"reglamentos", "manuales", "formularios", "avisos", "otros"}

// IsValidLibraryCategory reports whether c is one of the known categories.
func IsValidLibraryCategory(c string) bool {
	for _, v := range LibraryCategories {
		if v == c {
			return true
		}
	}
	return false
}
