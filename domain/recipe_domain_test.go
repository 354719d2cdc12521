package domain

import (
	"os"
	"testing"

	"TasteBite-Backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitValidator()
	os.Exit(m.Run())
}

func validRecipeRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Title:        "Pad Thai",
		Ingredients:  []string{"rice noodles", "eggs"},
		Instructions: []string{"soak noodles", "stir fry"},
		CookingTime:  25,
		Servings:     2,
	}
}

func assertRejectedOn(t *testing.T, req interface{}, field string) {
	t.Helper()
	err := utils.Validate.Struct(req)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.NotEmpty(t, validationErrs)
	assert.Contains(t, validationErrs[0].Field(), field)
}

func TestCreateRecipeRequestAcceptsValidInput(t *testing.T) {
	assert.NoError(t, utils.Validate.Struct(validRecipeRequest()))
}

func TestCreateRecipeRequestRejectsEmptyLists(t *testing.T) {
	req := validRecipeRequest()
	req.Ingredients = []string{}
	assertRejectedOn(t, req, "Ingredients")

	req = validRecipeRequest()
	req.Instructions = nil
	assertRejectedOn(t, req, "Instructions")
}

func TestCreateRecipeRequestRejectsBlankListEntries(t *testing.T) {
	req := validRecipeRequest()
	req.Ingredients = []string{"rice noodles", ""}
	assertRejectedOn(t, req, "Ingredients")
}

func TestCreateRecipeRequestRejectsNonPositiveNumbers(t *testing.T) {
	req := validRecipeRequest()
	req.CookingTime = 0
	assertRejectedOn(t, req, "CookingTime")

	req = validRecipeRequest()
	req.Servings = -1
	assertRejectedOn(t, req, "Servings")
}

func TestCreateRecipeRequestRejectsUnknownStatus(t *testing.T) {
	req := validRecipeRequest()
	req.Status = "archived"
	assertRejectedOn(t, req, "Status")
}

func TestUpdateRecipeRequestAllowsEmptyBody(t *testing.T) {
	assert.NoError(t, utils.Validate.Struct(UpdateRecipeRequest{}))
}

func TestUpdateRecipeRequestRejectsSuppliedInvalidFields(t *testing.T) {
	zero := 0
	assertRejectedOn(t, UpdateRecipeRequest{CookingTime: &zero}, "CookingTime")

	assertRejectedOn(t, UpdateRecipeRequest{Ingredients: []string{}}, "Ingredients")
}
