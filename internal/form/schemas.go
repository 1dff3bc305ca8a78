package form

// Job is the schema for creating or editing a job posting.
func Job() Schema {
	return Schema{
		{Name: "title", Label: "Title", Rules: []Rule{MinLen(2, "Title is required")}},
		{Name: "company", Label: "Company", Rules: []Rule{MinLen(2, "Company is required")}},
		{Name: "location", Label: "Location", Rules: []Rule{MinLen(2, "Location is required")}},
		{Name: "description", Label: "Description", Multiline: true,
			Rules: []Rule{MinLen(10, "Description must be at least 10 characters")}},
		{Name: "deadline", Label: "Deadline (YYYY-MM-DD)", Rules: []Rule{Required("Deadline is required")}},
	}
}

// Application is the schema for applying to a job.
func Application() Schema {
	return Schema{
		{Name: "cvLink", Label: "CV link", Rules: []Rule{URL("Please enter a valid URL")}},
		{Name: "coverLetter", Label: "Cover letter", Multiline: true,
			Rules: []Rule{
				MinLen(50, "Cover letter must be at least 50 characters"),
				MaxLen(5000, "Cover letter must be at most 5000 characters"),
			}},
	}
}

// Login is the schema for credential login.
func Login() Schema {
	return Schema{
		{Name: "email", Label: "Email", Rules: []Rule{Email("Please enter a valid email")}},
		{Name: "password", Label: "Password", Rules: []Rule{MinLen(6, "Password must be at least 6 characters")}},
	}
}

// Signup is the schema for account registration.
func Signup() Schema {
	return Schema{
		{Name: "name", Label: "Name", Rules: []Rule{MinLen(2, "Name is required")}},
		{Name: "email", Label: "Email", Rules: []Rule{Email("Please enter a valid email")}},
		{Name: "password", Label: "Password", Rules: []Rule{MinLen(6, "Password must be at least 6 characters")}},
		{Name: "confirm", Label: "Confirm password", Rules: []Rule{MatchField("password", "Passwords do not match")}},
	}
}
