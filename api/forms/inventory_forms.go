package forms

// Classification validates the add-classification form. The name must be
// a single alphanumeric token so it renders safely in the nav bar.
func Classification(nameTaken Check) *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "classification_name",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Tag: "required,alphanum", Message: "Classification name must contain only letters and numbers, no spaces."},
					{Check: notTaken(nameTaken), Message: "That classification already exists."},
				},
			},
		},
	}
}

// Vehicle validates both the add and edit vehicle forms; the two screens
// share every field. The classification probe confirms the selected id is
// real, not just numeric.
func Vehicle(classificationExists Check) *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "classification_id",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Func: positiveID, Message: "Please choose a classification."},
					{Check: classificationExists, Message: "Please choose a valid classification."},
				},
			},
			{
				Name:       "inv_make",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required,min=3", Message: "Make must be at least 3 characters."},
				},
			},
			{
				Name:       "inv_model",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required,min=3", Message: "Model must be at least 3 characters."},
				},
			},
			{
				Name:       "inv_description",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required", Message: "Please provide a description."},
				},
			},
			{
				// optional; blank falls back to the placeholder art
				Name:       "inv_image",
				Transforms: []Transform{Trim},
			},
			{
				Name:       "inv_thumbnail",
				Transforms: []Transform{Trim},
			},
			{
				Name:       "inv_price",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Func: nonNegativeInteger, Message: "Price must be zero or more."},
				},
			},
			{
				Name:       "inv_year",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Func: modelYear, Message: "Please provide a valid 4-digit year."},
				},
			},
			{
				Name:       "inv_miles",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Func: nonNegativeInteger, Message: "Miles must be zero or more."},
				},
			},
			{
				Name:       "inv_color",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required", Message: "Please provide a color."},
				},
			},
		},
	}
}
