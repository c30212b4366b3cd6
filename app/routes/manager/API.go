package manager

import (
	"net/url"
	"strconv"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/services"
	"github.com/gofiber/fiber/v2"
)

func redirectOK(c *fiber.Ctx, msg string) error {
	return c.Redirect("/manager/dashboard?message="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErr(c *fiber.Ctx, msg string) error {
	return c.Redirect("/manager/dashboard?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func backToForm(c *fiber.Ctx, formPath, msg string) error {
	return c.Redirect(formPath+"?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func optional(c *fiber.Ctx, field string) *string {
	if v := c.FormValue(field); v != "" {
		return &v
	}
	return nil
}

func EditClientForm(c *fiber.Ctx) error {
	client, err := database.GetClientWithContacts(config.GetDB(), c.Params("id"))
	if err != nil {
		return redirectErr(c, "Client not found")
	}
	return c.Render("edit_client", fiber.Map{
		"Title":       "Edit client - Sport Club",
		"Client":      client,
		"FormAction":  "/manager/client/" + client.ID + "/edit",
		"CurrentRole": "manager",
		"Error":       c.Query("error"),
	})
}

// UpdateClient edits the client record and upserts its phone and email
// contacts. An emptied field removes the contact.
func UpdateClient(c *fiber.Ctx) error {
	db := config.GetDB()
	clientID := c.Params("id")
	formPath := "/manager/client/" + clientID + "/edit"

	client, err := database.GetClientByID(db, clientID)
	if err != nil {
		return redirectErr(c, "Client not found")
	}

	phone, err := services.NormalizePhone(c.FormValue("phone"))
	if err != nil {
		return backToForm(c, formPath, err.Error())
	}
	discount, err := strconv.ParseFloat(c.FormValue("discount", "0"), 64)
	if err != nil {
		return backToForm(c, formPath, "Invalid discount")
	}

	client.LastName = c.FormValue("last_name")
	client.FirstName = c.FormValue("first_name")
	client.MiddleName = optional(c, "middle_name")
	client.Discount = discount
	if err := services.ValidateClientName(client.LastName, client.FirstName); err != nil {
		return backToForm(c, formPath, err.Error())
	}

	if err := database.UpdateClient(db, client); err != nil {
		return redirectErr(c, "Database error while updating the client")
	}
	if err := database.UpsertClientContact(db, clientID, models.ContactPhone, phone); err != nil {
		return redirectErr(c, "Database error while saving the phone contact")
	}
	if err := database.UpsertClientContact(db, clientID, models.ContactEmail, c.FormValue("email")); err != nil {
		return redirectErr(c, "Database error while saving the email contact")
	}
	return redirectOK(c, "Client data updated")
}

func EditStaffForm(c *fiber.Ctx) error {
	db := config.GetDB()
	staff, err := database.GetStaffByID(db, c.Params("id"))
	if err != nil {
		return redirectErr(c, "Staff member not found")
	}
	positions, err := database.GetPositions(db)
	if err != nil {
		return redirectErr(c, "Failed to load positions")
	}
	return c.Render("edit_staff", fiber.Map{
		"Title":       "Edit staff - Sport Club",
		"Staff":       staff,
		"Positions":   positions,
		"FormAction":  "/manager/staff/" + staff.ID + "/edit",
		"CurrentRole": "manager",
		"Error":       c.Query("error"),
	})
}

func UpdateStaff(c *fiber.Ctx) error {
	db := config.GetDB()
	staffID := c.Params("id")
	formPath := "/manager/staff/" + staffID + "/edit"

	staff, err := database.GetStaffByID(db, staffID)
	if err != nil {
		return redirectErr(c, "Staff member not found")
	}

	birthDate, err1 := time.Parse("2006-01-02", c.FormValue("birth_date"))
	hireDate, err2 := time.Parse("2006-01-02", c.FormValue("hire_date"))
	if err1 != nil || err2 != nil {
		return backToForm(c, formPath, "Invalid date format")
	}
	phone, err := services.NormalizePhone(c.FormValue("phone"))
	if err != nil {
		return backToForm(c, formPath, err.Error())
	}

	input := services.StaffInput{
		LastName:       c.FormValue("last_name"),
		FirstName:      c.FormValue("first_name"),
		INN:            c.FormValue("inn"),
		SNILS:          c.FormValue("snils"),
		PassportSeries: c.FormValue("passport_series"),
		PassportNumber: c.FormValue("passport_number"),
		BirthDate:      birthDate,
		HireDate:       hireDate,
	}
	if err := services.ValidateStaffInput(input); err != nil {
		return backToForm(c, formPath, err.Error())
	}

	var salary *float64
	if raw := c.FormValue("salary"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			salary = &v
		}
	}
	var phonePtr *string
	if phone != "" {
		phonePtr = &phone
	}

	staff.LastName = input.LastName
	staff.FirstName = input.FirstName
	staff.MiddleName = optional(c, "middle_name")
	staff.BirthDate = birthDate
	staff.Gender = optional(c, "gender")
	staff.Phone = phonePtr
	staff.PassportSeries = optional(c, "passport_series")
	staff.PassportNumber = optional(c, "passport_number")
	staff.Address = optional(c, "address")
	staff.Education = optional(c, "education")
	staff.INN = input.INN
	staff.SNILS = input.SNILS
	staff.HireDate = hireDate
	staff.PositionID = optional(c, "position_id")
	staff.Salary = salary

	if err := database.UpdateStaff(db, staff); err != nil {
		if database.IsBusinessError(err) {
			return backToForm(c, formPath, err.Error())
		}
		return backToForm(c, formPath, "Database error while updating the staff member")
	}
	return redirectOK(c, "Staff member updated")
}

// AddTraining mirrors the admin authoring flow for the manager role.
func AddTraining(c *fiber.Ctx) error {
	startTime, err1 := time.Parse("2006-01-02T15:04", c.FormValue("start_time"))
	endTime, err2 := time.Parse("2006-01-02T15:04", c.FormValue("end_time"))
	if err1 != nil || err2 != nil {
		return redirectErr(c, "Invalid date format")
	}

	maxParticipants, _ := strconv.Atoi(c.FormValue("max_participants", "0"))
	input := services.TrainingInput{
		Name:            c.FormValue("name"),
		SectionID:       c.FormValue("section_id"),
		TrainerID:       optional(c, "trainer_id"),
		StartTime:       startTime,
		EndTime:         endTime,
		IsGroup:         c.FormValue("is_group") != "",
		MaxParticipants: maxParticipants,
		ClientID:        optional(c, "client_id"),
	}
	if values, err := url.ParseQuery(string(c.Body())); err == nil {
		input.AllowedTypeIDs = values["allowed_subscription_type_ids"]
	}

	if input.Name == "" || input.SectionID == "" {
		return redirectErr(c, "Name and section are required")
	}
	if err := services.ValidateTrainingInput(input); err != nil {
		return redirectErr(c, err.Error())
	}

	training := &models.Training{
		Name:            input.Name,
		SectionID:       input.SectionID,
		TrainerID:       input.TrainerID,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		IsGroup:         input.IsGroup,
		MaxParticipants: input.MaxParticipants,
	}
	if err := database.CreateTraining(config.GetDB(), training, input.ClientID, input.AllowedTypeIDs); err != nil {
		return redirectErr(c, "Database error while creating the training")
	}
	if input.IsGroup {
		return redirectOK(c, "Group training created")
	}
	return redirectOK(c, "Individual training created and client booked")
}
