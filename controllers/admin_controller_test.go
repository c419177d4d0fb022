package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
	"github.com/kendall-kelly/kendalls-kitchen/services"
	"github.com/kendall-kelly/kendalls-kitchen/tests/testutil"
)

func newAdminView(t *testing.T) (*AdminController, *services.ScriptedPrompter, *gorm.DB) {
	db := testutil.MustOpenTestDB(t)
	prompter := services.NewScriptedPrompter()
	return NewAdminController(services.NewAdminService(db), prompter), prompter, db
}

func TestAdminViewTable(t *testing.T) {
	ac, prompter, _ := newAdminView(t)
	prompter.IntReplies = []services.IntReply{{Value: 1, OK: true}}
	prompter.StringReplies = []services.StringReply{{Value: "cuisine", OK: true}}

	ac.Menu()

	assert.Len(t, prompter.Shown, 1)
	assert.Contains(t, prompter.Shown[0], "Italian")
	assert.Contains(t, prompter.Shown[0], "name", "Column headers should be included")
}

func TestAdminViewUnknownTable(t *testing.T) {
	ac, prompter, _ := newAdminView(t)
	prompter.IntReplies = []services.IntReply{{Value: 1, OK: true}}
	prompter.StringReplies = []services.StringReply{{Value: "secrets", OK: true}}

	ac.Menu()

	assert.Len(t, prompter.Notices, 1)
	assert.Contains(t, prompter.Notices[0], "unknown table")
}

func TestAdminAddFood(t *testing.T) {
	ac, prompter, db := newAdminView(t)
	prompter.IntReplies = []services.IntReply{{Value: 2, OK: true}}
	prompter.StringReplies = []services.StringReply{
		{Value: "", OK: false},           // foodid: autoassigned
		{Value: "Pad Thai", OK: true},    // foodname
		{Value: "not-a-price", OK: true}, // price: coerced to absent
		{Value: "10", OK: true},          // quantity
		{Value: "Available", OK: true},   // foodavail
		{Value: "2", OK: true},           // cuisineid
		{Value: "5", OK: true},           // ingid
		{Value: "2", OK: true},           // chefid
	}

	ac.Menu()

	assert.Contains(t, prompter.Notices, "Added: Food added successfully.")

	var food models.Food
	assert.NoError(t, db.Where("name = ?", "Pad Thai").First(&food).Error)
	assert.Nil(t, food.Price, "A non-numeric price should be stored as absent, not reject the row")
	assert.Equal(t, 10, *food.Quantity)
}

func TestAdminResetCustomersDeclined(t *testing.T) {
	ac, prompter, db := newAdminView(t)
	prompter.IntReplies = []services.IntReply{{Value: 3, OK: true}}
	prompter.ConfirmReplies = []bool{false}

	ac.Menu()

	var customers int64
	assert.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 5, customers, "Declining the confirmation must change nothing")
	assert.Empty(t, prompter.Notices)
}

func TestAdminResetCustomersConfirmed(t *testing.T) {
	ac, prompter, db := newAdminView(t)
	prompter.IntReplies = []services.IntReply{{Value: 3, OK: true}}
	prompter.ConfirmReplies = []bool{true}

	ac.Menu()

	var customers int64
	assert.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 0, customers)
	assert.Contains(t, prompter.Notices, "Done: All customers deleted (5 removed).")
}
