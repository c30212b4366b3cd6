package techadmin

import (
	"net/url"
	"strconv"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTechAdminRoutes(app *fiber.App) {
	tech := app.Group("/tech_admin", auth.RequireRole(models.RoleTechAdmin))

	tech.Get("/dashboard", Dashboard)
	tech.Post("/add_equipment", AddEquipment)
	tech.Post("/update_equipment/:id", UpdateEquipment)
	tech.Post("/section/:id/status", UpdateSectionStatus)
}

func redirectOK(c *fiber.Ctx, msg string) error {
	return c.Redirect("/tech_admin/dashboard?message="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErr(c *fiber.Ctx, msg string) error {
	return c.Redirect("/tech_admin/dashboard?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func optional(c *fiber.Ctx, field string) *string {
	if v := c.FormValue(field); v != "" {
		return &v
	}
	return nil
}

// Dashboard shows the inventory with derived warranty-end dates and the
// section list with statuses.
func Dashboard(c *fiber.Ctx) error {
	db := config.GetDB()

	equipment, err := database.GetEquipment(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load equipment")
	}
	sections, err := database.GetSections(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load sections")
	}
	statuses, err := database.GetStatuses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load statuses")
	}

	return c.Render("tech_admin", fiber.Map{
		"Title":       "Technical administrator - Sport Club",
		"CurrentUser": auth.CurrentUser(c),
		"Equipment":   equipment,
		"Sections":    sections,
		"Statuses":    statuses,
		"Today":       time.Now(),
		"Message":     c.Query("message"),
		"Error":       c.Query("error"),
	})
}

func AddEquipment(c *fiber.Ctx) error {
	purchaseDate, err := time.Parse("2006-01-02", c.FormValue("purchase_date"))
	if err != nil {
		return redirectErr(c, "Invalid purchase date")
	}
	warrantyMonths, err := strconv.Atoi(c.FormValue("warranty_months"))
	if err != nil || warrantyMonths < 0 {
		return redirectErr(c, "Invalid warranty length")
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil || quantity < 1 {
		return redirectErr(c, "Invalid quantity")
	}

	equipment := &models.Equipment{
		Name:           c.FormValue("name"),
		Model:          optional(c, "model"),
		SectionID:      c.FormValue("section_id"),
		PurchaseDate:   purchaseDate,
		WarrantyMonths: warrantyMonths,
		Quantity:       quantity,
	}
	if equipment.Name == "" || equipment.SectionID == "" {
		return redirectErr(c, "Name and section are required")
	}
	if err := database.CreateEquipment(config.GetDB(), equipment); err != nil {
		return redirectErr(c, "Database error while adding the equipment")
	}
	return redirectOK(c, "Equipment added")
}

func UpdateEquipment(c *fiber.Ctx) error {
	db := config.GetDB()
	equipment, err := database.GetEquipmentByID(db, c.Params("id"))
	if err != nil {
		return redirectErr(c, "Equipment not found")
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil || quantity < 1 {
		return redirectErr(c, "Invalid quantity")
	}
	equipment.Name = c.FormValue("name")
	equipment.Model = optional(c, "model")
	equipment.Quantity = quantity
	if raw := c.FormValue("last_maintenance_date"); raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			equipment.LastMaintenanceDate = &d
		}
	}

	if err := database.UpdateEquipment(db, equipment); err != nil {
		return redirectErr(c, "Database error while updating the equipment")
	}
	return redirectOK(c, "Equipment updated")
}

func UpdateSectionStatus(c *fiber.Ctx) error {
	statusName := c.FormValue("status_name")
	if statusName == "" {
		return redirectErr(c, "Status is required")
	}
	if err := database.UpdateSectionStatus(config.GetDB(), c.Params("id"), statusName); err != nil {
		return redirectErr(c, "Database error while updating the section")
	}
	return redirectOK(c, "Section status updated")
}
