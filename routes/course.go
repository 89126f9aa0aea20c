package routes

import (
	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"github.com/Justlrnal4/golf-group-organizer/utils"
	"github.com/kataras/iris/v12"
)

// ListCourses pages through the static course catalog.
func ListCourses(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 50)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}

	var total int64
	storage.DB.Model(&models.Course{}).Count(&total)

	var courses []models.Course
	storage.DB.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&courses)

	utils.JSONPage(ctx, courses, page, perPage, total)
}
