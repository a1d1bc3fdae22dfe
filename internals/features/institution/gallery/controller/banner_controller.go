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

type BannerController struct {
	DB *gorm.DB
}

func NewBannerController(db *gorm.DB) *BannerController {
	return &BannerController{DB: db}
}

func (ctl *BannerController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.BannerModel{})
	if c.Query("active") == "true" {
		q = q.Where("banner_is_active = ?", true)
	}

	var banners []m.BannerModel
	if err := q.Order("banner_created_at DESC").Find(&banners).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, d.FromBannerModel(b))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *BannerController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "image file is required")
	}

	url, err := helper.UploadImage("banners", fileHeader)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	banner := m.BannerModel{
		BannerTitle:    strings.TrimSpace(c.FormValue("title")),
		BannerImageURL: url,
		BannerIsActive: true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&banner).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromBannerModel(banner))
}

func (ctl *BannerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid banner id")
	}

	var banner m.BannerModel
	if err := ctl.DB.WithContext(c.Context()).First(&banner, "banner_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Banner not found")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&banner).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	_ = helper.DeleteStoredImage(banner.BannerImageURL)

	return helper.JsonDeleted(c, "", fiber.Map{"banner_id": id})
}
