package controllers

import (
	"errors"
	"strings"

	"careerhub/logger"
	"careerhub/middleware"
	"careerhub/services"
	"careerhub/utils"
	adminValidator "careerhub/validators/admin"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Upload stores a multipart file in Supabase Storage and returns its public URL
func Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "file is required!"})
	}

	folder := strings.Trim(strings.TrimSpace(c.FormValue("folder")), "/")
	if strings.Contains(folder, "..") {
		return middleware.ValidationErrorResponse(c, map[string]string{"folder": "folder must not contain '..'!"})
	}

	data, contentType, err := utils.ReadUploadedFile(file)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, err.Error(), nil)
		}
		logger.Log.Error("read upload failed", zap.String("filename", file.Filename), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	path := utils.ObjectPath(folder, file.Filename)
	url, err := services.Clients.Storage.Upload(c.UserContext(), path, contentType, data, false)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "Supabase Storage", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", fiber.Map{
		"path":        path,
		"url":         url,
		"contentType": contentType,
		"size":        len(data),
	})
}

// Remove deletes an object from the bucket
func Remove(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRemoveMedia").(*adminValidator.RemoveMediaRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.Clients.Storage.Remove(c.UserContext(), reqData.Path); err != nil {
		return middleware.UpstreamErrorResponse(c, "Supabase Storage", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File removed successfully!", nil)
}

// DriveFiles lists a Google Drive folder
func DriveFiles(c *fiber.Ctx) error {
	folderID := strings.TrimSpace(c.Query("folderId"))
	if folderID == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"folderId": "folderId is required!"})
	}
	if strings.ContainsAny(folderID, "' \\") {
		return middleware.ValidationErrorResponse(c, map[string]string{"folderId": "folderId is invalid!"})
	}

	files, err := services.Clients.Drive.ListFolder(c.UserContext(), folderID)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, "Google Drive", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Files fetched successfully!", files)
}
