package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/institution/gallery/dto"
	m "schoolku_backend/internals/features/institution/gallery/model"
	helper "schoolku_backend/internals/helpers"
)

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

func (ctl *GalleryController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.GalleryItemModel{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("gallery_item_category = ?", category)
	}

	var items []m.GalleryItemModel
	if err := q.Order("gallery_item_created_at DESC").Find(&items).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.GalleryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, d.FromGalleryItemModel(item))
	}
	return helper.JsonList(c, "", out, nil)
}

// Upload accepts a multipart form with an "image" file plus optional
// caption/category fields. The image is resized, re-encoded as webp and
// pushed to object storage before the row is saved.
func (ctl *GalleryController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "image file is required")
	}

	url, err := helper.UploadImage("gallery", fileHeader)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	item := m.GalleryItemModel{
		GalleryItemCaption:  strings.TrimSpace(c.FormValue("caption")),
		GalleryItemCategory: strings.TrimSpace(c.FormValue("category")),
		GalleryItemImageURL: url,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromGalleryItemModel(item))
}

func (ctl *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid gallery item id")
	}

	var item m.GalleryItemModel
	if err := ctl.DB.WithContext(c.Context()).First(&item, "gallery_item_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Gallery item not found")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&item).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	// Best effort; the row is already gone.
	_ = helper.DeleteStoredImage(item.GalleryItemImageURL)

	return helper.JsonDeleted(c, "", fiber.Map{"gallery_item_id": id})
}
