package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/institution/gallery/model"
)

type GalleryItemResponse struct {
	GalleryItemID uuid.UUID `json:"gallery_item_id"`
	Caption       string    `json:"caption"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

func FromGalleryItemModel(g model.GalleryItemModel) GalleryItemResponse {
	return GalleryItemResponse{
		GalleryItemID: g.GalleryItemID,
		Caption:       g.GalleryItemCaption,
		Category:      g.GalleryItemCategory,
		ImageURL:      g.GalleryItemImageURL,
		UploadedAt:    g.GalleryItemCreatedAt,
	}
}

type BannerResponse struct {
	BannerID  uuid.UUID `json:"banner_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBannerModel(b model.BannerModel) BannerResponse {
	return BannerResponse{
		BannerID:  b.BannerID,
		Title:     b.BannerTitle,
		ImageURL:  b.BannerImageURL,
		IsActive:  b.BannerIsActive,
		CreatedAt: b.BannerCreatedAt,
	}
}
