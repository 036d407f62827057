// Package model resolves the dynamic content of a bound form attribute: its
// current value, human label, hint, placeholder and first validation error.
//
// Widgets only depend on the FormModel interface. Form is a small map-backed
// implementation that can be declared in Go or loaded from JSON/YAML files:
//
//	name: LoginForm
//	attributes:
//	  - name: login
//	    label: Login
//	    hint: Please enter your login.
//	    value: admin
//	    errors: ["Value cannot be blank."]
package model
