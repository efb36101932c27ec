package utils

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// AssetDeleter is the narrow adapter the rest of the app depends on for
// removing hosted assets. The cloudinary implementation lives behind it so
// handlers can be exercised with a fake.
type AssetDeleter interface {
	Delete(ctx context.Context, publicID string) (bool, error)
}

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadToCloudinary uploads a file to Cloudinary and returns the secure
// URL and the public ID needed to delete it later.
func UploadToCloudinary(file interface{}, publicID string, folder string) (string, string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", "", err
	}

	ctx := context.Background()
	uploadParams := uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		Transformation: "c_thumb,w_200,h_200", // Resize profile pictures
	}

	resp, err := cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", "", err
	}
	return resp.SecureURL, resp.PublicID, nil
}

// CloudinaryDeleter deletes assets by public ID with cache invalidation.
type CloudinaryDeleter struct{}

func (CloudinaryDeleter) Delete(ctx context.Context, publicID string) (bool, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return false, err
	}

	resp, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return resp.Result == "ok", nil
}
