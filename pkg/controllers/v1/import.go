package v1

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import/Export
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, errWrongFileSuffix
	}

	return formFile.Open()
}

// readBundle reads the bundle from an uploaded file or, if the request
// is not a multipart form, from the request body.
func readBundle(c *gin.Context) (models.Bundle, error) {
	var bundle models.Bundle

	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		err := httputil.BindData(c, &bundle)
		return bundle, err
	}

	f, err := getUploadedFile(c, ".json")
	if err != nil {
		return bundle, err
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&bundle)
	if err != nil {
		return bundle, fmt.Errorf("%w: %w", errInvalidBundle, err)
	}

	return bundle, nil
}

// @Summary		Import
// @Description	Imports a backup. Every collection present in the backup replaces the stored one, collections that are missing are kept. Nothing is changed if the backup is invalid.
// @Tags			Import/Export
// @Accept			multipart/form-data
// @Accept			json
// @Produce		json
// @Success		200			{object}	ImportResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			file		formData	file	false	"File to import"
// @Param			backup		body		models.Bundle	false	"Backup to import"
// @Param			profile		query		string	false	"ID of the profile to import into. Defaults to the active profile."
// @Param			profileName	query		string	false	"Name for a new profile to import into"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var query ImportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	bundle, err := readBundle(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var profile models.Profile
	if query.ProfileName == "" {
		id, err := requireProfile(query.Profile)
		if err != nil {
			c.JSON(httperror.Status(err), httperror.New(err))
			return
		}

		profile, err = getModelByID[models.Profile](id)
		if err != nil {
			c.JSON(httperror.Status(err), httperror.New(err))
			return
		}
	}

	// A new profile only exists if the import succeeds
	err = models.InTransaction(models.DB, func(tx *gorm.DB) error {
		if query.ProfileName != "" {
			created, err := models.CreateProfile(tx, models.ProfileEditable{Name: query.ProfileName})
			if err != nil {
				return err
			}
			profile = created
		}

		return models.Import(tx, profile.ID, bundle)
	})
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	collections, err := models.LoadCollections(models.DB, profile.ID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	active, err := models.ActiveProfileID(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	result := ImportResult{Profile: newProfile(c, profile, active)}
	result.Counts.Transactions = len(collections.Transactions)
	result.Counts.Recurrings = len(collections.Rules)
	result.Counts.Categories = len(collections.Categories)
	result.Counts.Budgets = len(collections.Budgets)

	c.JSON(http.StatusOK, ImportResponse{Data: &result})
}
