package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryItemModel struct {
	GalleryItemID uuid.UUID `gorm:"column:gallery_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gallery_item_id"`

	GalleryItemCaption  string `gorm:"column:gallery_item_caption;type:varchar(255)" json:"gallery_item_caption"`
	GalleryItemCategory string `gorm:"column:gallery_item_category;type:varchar(100);index" json:"gallery_item_category"`
	GalleryItemImageURL string `gorm:"column:gallery_item_image_url;type:text;not null" json:"gallery_item_image_url"`

	GalleryItemCreatedAt time.Time      `gorm:"column:gallery_item_created_at;autoCreateTime" json:"gallery_item_created_at"`
	GalleryItemDeletedAt gorm.DeletedAt `gorm:"column:gallery_item_deleted_at;index" json:"-"`
}

func (GalleryItemModel) TableName() string {
	return "gallery_items"
}

type BannerModel struct {
	BannerID uuid.UUID `gorm:"column:banner_id;type:uuid;default:gen_random_uuid();primaryKey" json:"banner_id"`

	BannerTitle    string `gorm:"column:banner_title;type:varchar(255)" json:"banner_title"`
	BannerImageURL string `gorm:"column:banner_image_url;type:text;not null" json:"banner_image_url"`
	BannerIsActive bool   `gorm:"column:banner_is_active;not null;default:true" json:"banner_is_active"`

	BannerCreatedAt time.Time      `gorm:"column:banner_created_at;autoCreateTime" json:"banner_created_at"`
	BannerDeletedAt gorm.DeletedAt `gorm:"column:banner_deleted_at;index" json:"-"`
}

func (BannerModel) TableName() string {
	return "banners"
}
