package forms

import "context"

// Registration validates the signup form. The email uniqueness probe is
// injected so the form stays declarative.
func Registration(emailTaken Check) *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "account_firstname",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required", Message: "Please provide a first name."},
				},
			},
			{
				Name:       "account_lastname",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required,min=2", Message: "Please provide a last name."},
				},
			},
			{
				Name:       "account_email",
				Transforms: []Transform{Trim, Lowercase},
				Rules: []Rule{
					{Tag: "required,email", Message: "A valid email is required."},
					{Check: notTaken(emailTaken), Message: "That email already exists. Please log in or use a different email."},
				},
			},
			{
				Name:       "account_password",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Func: strongPassword, Message: "Password must be at least 12 characters and include an uppercase letter, a lowercase letter, a number, and a symbol."},
				},
			},
		},
	}
}

// Login validates the signin form. Password strength is not re-checked
// here; a wrong password fails at verification with the same message as an
// unknown email.
func Login() *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "account_email",
				Transforms: []Transform{Trim, Lowercase},
				Rules: []Rule{
					{Tag: "required,email", Message: "A valid email is required."},
				},
			},
			{
				Name:       "account_password",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Tag: "required", Message: "Please provide a password."},
				},
			},
		},
	}
}

// AccountUpdate validates the profile edit form. The uniqueness probe must
// already exclude the account being edited, so keeping one's own email
// passes.
func AccountUpdate(emailTakenByOther Check) *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "account_firstname",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required", Message: "Please provide a first name."},
				},
			},
			{
				Name:       "account_lastname",
				Transforms: []Transform{Trim, Escape},
				Rules: []Rule{
					{Tag: "required,min=2", Message: "Please provide a last name."},
				},
			},
			{
				Name:       "account_email",
				Transforms: []Transform{Trim, Lowercase},
				Rules: []Rule{
					{Tag: "required,email", Message: "A valid email is required."},
					{Check: notTaken(emailTakenByOther), Message: "That email already exists. Please use a different email."},
				},
			},
		},
	}
}

// PasswordChange validates the standalone password form.
func PasswordChange() *Form {
	return &Form{
		Policy: PolicySticky,
		Fields: []Field{
			{
				Name:       "account_password",
				Transforms: []Transform{Trim},
				Rules: []Rule{
					{Func: strongPassword, Message: "Password must be at least 12 characters and include an uppercase letter, a lowercase letter, a number, and a symbol."},
				},
			},
		},
	}
}

// notTaken inverts an existence probe into a pass/fail check.
func notTaken(taken Check) Check {
	return func(ctx context.Context, value string) (bool, error) {
		exists, err := taken(ctx, value)
		if err != nil {
			return false, err
		}
		return !exists, nil
	}
}
