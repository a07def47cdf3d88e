package forms

// Review validates the add-review form on the vehicle detail page. There
// is no form of its own to re-render, so failures flash and bounce back to
// the detail page.
func Review() *Form {
	return &Form{
		Policy: PolicyRedirect,
		Fields: []Field{
			{
				Name:       "review_text",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Func: textWithin(1, 1000), Message: "Review must be between 1 and 1000 characters."},
				},
			},
		},
	}
}

// ReviewEdit covers the dedicated edit screen, which does have a form to
// re-render.
func ReviewEdit() *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "review_text",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Func: textWithin(1, 1000), Message: "Review must be between 1 and 1000 characters."},
				},
			},
		},
	}
}
