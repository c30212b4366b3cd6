package admin

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
	return c.Redirect("/admin/dashboard?message="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErr(c *fiber.Ctx, msg string) error {
	return c.Redirect("/admin/dashboard?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func optional(c *fiber.Ctx, field string) *string {
	if v := c.FormValue(field); v != "" {
		return &v
	}
	return nil
}

func AddClient(c *fiber.Ctx) error {
	discount, _ := strconv.ParseFloat(c.FormValue("discount", "0"), 64)
	client := &models.Client{
		LastName:   c.FormValue("last_name"),
		FirstName:  c.FormValue("first_name"),
		MiddleName: optional(c, "middle_name"),
		RegDate:    time.Now(),
		Discount:   discount,
	}
	if err := services.ValidateClientName(client.LastName, client.FirstName); err != nil {
		return redirectErr(c, err.Error())
	}
	if err := database.CreateClient(config.GetDB(), client); err != nil {
		return redirectErr(c, "Database error while adding the client")
	}
	return redirectOK(c, "Client added")
}

func AddStaff(c *fiber.Ctx) error {
	birthDate, err1 := time.Parse("2006-01-02", c.FormValue("birth_date"))
	hireDate, err2 := time.Parse("2006-01-02", c.FormValue("hire_date"))
	if err1 != nil || err2 != nil {
		return redirectErr(c, "Invalid date format")
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
		return redirectErr(c, err.Error())
	}

	staff := &models.Staff{
		LastName:       input.LastName,
		FirstName:      input.FirstName,
		MiddleName:     optional(c, "middle_name"),
		BirthDate:      birthDate,
		Gender:         optional(c, "gender"),
		PassportSeries: optional(c, "passport_series"),
		PassportNumber: optional(c, "passport_number"),
		INN:            input.INN,
		SNILS:          input.SNILS,
		HireDate:       hireDate,
		PositionID:     optional(c, "position_id"),
	}
	if err := database.CreateStaff(config.GetDB(), staff); err != nil {
		if database.IsBusinessError(err) {
			return redirectErr(c, err.Error())
		}
		return redirectErr(c, "Database error while adding the staff member")
	}
	return redirectOK(c, "Staff member added")
}

func AddSubscriptionType(c *fiber.Ctx) error {
	cost, err := strconv.ParseFloat(c.FormValue("cost"), 64)
	if err != nil || cost < 0 {
		return redirectErr(c, "Invalid cost")
	}
	st := &models.SubscriptionType{
		Name:        c.FormValue("name"),
		Cost:        cost,
		Description: optional(c, "description"),
	}
	if st.Name == "" {
		return redirectErr(c, "Name is required")
	}
	if err := database.CreateSubscriptionType(config.GetDB(), st); err != nil {
		return redirectErr(c, "Database error while creating the subscription type")
	}
	return redirectOK(c, "Subscription type created")
}

func SellSubscription(c *fiber.Ctx) error {
	startDate, err1 := time.Parse("2006-01-02", c.FormValue("start_date"))
	endDate, err2 := time.Parse("2006-01-02", c.FormValue("end_date"))
	if err1 != nil || err2 != nil {
		return redirectErr(c, "Invalid date format")
	}
	if endDate.Before(startDate) {
		return redirectErr(c, "End date is before start date")
	}

	cs := &models.ClientSubscription{
		ClientID:           c.FormValue("client_id"),
		SubscriptionTypeID: c.FormValue("subscription_type_id"),
		StartDate:          startDate,
		EndDate:            endDate,
		Status:             models.SubscriptionActive,
	}
	if cs.ClientID == "" || cs.SubscriptionTypeID == "" {
		return redirectErr(c, "Client and subscription type are required")
	}
	if err := database.CreateClientSubscription(config.GetDB(), cs); err != nil {
		return redirectErr(c, "Database error while selling the subscription")
	}
	return redirectOK(c, "Subscription sold to client")
}

// UpdateSubscriptionStatus moves a subscription between lifecycle states,
// e.g. blocking a client's access.
func UpdateSubscriptionStatus(c *fiber.Ctx) error {
	status, err := models.ParseSubscriptionStatus(c.FormValue("status_name"))
	if err != nil {
		return redirectErr(c, "Unknown subscription status")
	}
	if err := database.UpdateSubscriptionStatus(config.GetDB(), c.Params("id"), status); err != nil {
		return redirectErr(c, "Database error while updating the subscription")
	}
	return redirectOK(c, "Subscription status updated")
}

// GrantTrainingAccess adds subscription types to an existing group
// training's allowed set.
func GrantTrainingAccess(c *fiber.Ctx) error {
	training, err := database.GetTrainingByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return redirectErr(c, "Training not found")
	}
	if !training.IsGroup {
		return redirectErr(c, "Access types apply to group trainings only")
	}

	var typeIDs []string
	if values, err := url.ParseQuery(string(c.Body())); err == nil {
		typeIDs = values["allowed_subscription_type_ids"]
	}
	if len(typeIDs) == 0 {
		return redirectErr(c, "Select at least one subscription type")
	}
	if err := database.BatchGrantAccess(config.GetDB(), training.ID, typeIDs); err != nil {
		return redirectErr(c, "Database error while granting access")
	}
	return redirectOK(c, "Training access updated")
}

func AddSection(c *fiber.Ctx) error {
	section := &models.Section{
		Name:       c.FormValue("name"),
		StatusName: optional(c, "status_name"),
	}
	if section.Name == "" {
		return redirectErr(c, "Name is required")
	}
	if err := database.CreateSection(config.GetDB(), section); err != nil {
		return redirectErr(c, "Database error while adding the section")
	}
	return redirectOK(c, "Section added")
}

// AddTraining authors a training. The second step (participant for an
// individual one, access grants for a group one) is committed in the same
// transaction as the training row.
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

func EditClientForm(c *fiber.Ctx) error {
	client, err := database.GetClientWithContacts(config.GetDB(), c.Params("id"))
	if err != nil {
		return redirectErr(c, "Client not found")
	}
	return c.Render("edit_client", fiber.Map{
		"Title":       "Edit client - Sport Club",
		"Client":      client,
		"FormAction":  "/admin/client/" + client.ID + "/edit",
		"CurrentRole": "admin",
		"Error":       c.Query("error"),
	})
}

func UpdateClient(c *fiber.Ctx) error {
	db := config.GetDB()
	client, err := database.GetClientByID(db, c.Params("id"))
	if err != nil {
		return redirectErr(c, "Client not found")
	}

	discount, err := strconv.ParseFloat(c.FormValue("discount", "0"), 64)
	if err != nil {
		return redirectErr(c, "Invalid discount")
	}
	client.LastName = c.FormValue("last_name")
	client.FirstName = c.FormValue("first_name")
	client.MiddleName = optional(c, "middle_name")
	client.Discount = discount
	if err := services.ValidateClientName(client.LastName, client.FirstName); err != nil {
		return redirectErr(c, err.Error())
	}

	phone, err := services.NormalizePhone(c.FormValue("phone"))
	if err != nil {
		return redirectErr(c, err.Error())
	}

	if err := database.UpdateClient(db, client); err != nil {
		return redirectErr(c, "Database error while updating the client")
	}
	if err := database.UpsertClientContact(db, client.ID, models.ContactPhone, phone); err != nil {
		return redirectErr(c, "Database error while saving the phone contact")
	}
	if err := database.UpsertClientContact(db, client.ID, models.ContactEmail, c.FormValue("email")); err != nil {
		return redirectErr(c, "Database error while saving the email contact")
	}
	return redirectOK(c, "Client updated")
}

// DeleteClient removes the client and, through the cascades, all of its
// subscriptions, bookings, warnings, contacts and the login user.
func DeleteClient(c *fiber.Ctx) error {
	if err := database.DeleteClient(config.GetDB(), c.Params("id")); err != nil {
		return redirectErr(c, "Database error while deleting the client")
	}
	return redirectOK(c, "Client deleted")
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
		"FormAction":  "/admin/staff/" + staff.ID + "/edit",
		"CurrentRole": "admin",
		"Error":       c.Query("error"),
	})
}

func UpdateStaff(c *fiber.Ctx) error {
	db := config.GetDB()
	staff, err := database.GetStaffByID(db, c.Params("id"))
	if err != nil {
		return redirectErr(c, "Staff member not found")
	}

	birthDate, err1 := time.Parse("2006-01-02", c.FormValue("birth_date"))
	hireDate, err2 := time.Parse("2006-01-02", c.FormValue("hire_date"))
	if err1 != nil || err2 != nil {
		return redirectErr(c, "Invalid date format")
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
		return redirectErr(c, err.Error())
	}

	var salary *float64
	if raw := c.FormValue("salary"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			salary = &v
		}
	}

	staff.LastName = input.LastName
	staff.FirstName = input.FirstName
	staff.MiddleName = optional(c, "middle_name")
	staff.BirthDate = birthDate
	staff.Gender = optional(c, "gender")
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
			return redirectErr(c, err.Error())
		}
		return redirectErr(c, "Database error while updating the staff member")
	}
	return redirectOK(c, "Staff member updated")
}

func DeleteStaff(c *fiber.Ctx) error {
	if err := database.DeleteStaff(config.GetDB(), c.Params("id")); err != nil {
		return redirectErr(c, "Database error while deleting the staff member")
	}
	return redirectOK(c, "Staff member deleted")
}
