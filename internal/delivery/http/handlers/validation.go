package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	teamdto "github.com/LavaJover/football-team-service/internal/delivery/http/dto/team"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// ValidationErrors maps a request field (e.g. "joueurs[0].name") to its message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Budgets are stored as numeric(19,2).
const budgetScale = 2

var maxBudget = decimal.New(1, 19-budgetScale)

var fieldMessages = map[string]string{
	"name.notblank":             "Le nom de l'équipe est obligatoire",
	"acronym.notblank":          "L'acronyme de l'équipe est obligatoire",
	"budget.required":           "Le budget est obligatoire",
	"budget.gt":                 "Le budget doit être positif",
	"budget.scale":              "Le budget doit avoir au plus 2 décimales",
	"budget.lt":                 "Le budget dépasse le montant maximal autorisé",
	"joueur.name.notblank":      "Le nom du joueur est obligatoire",
	"joueur.position.notblank":  "La position du joueur est obligatoire",
	"joueurId.required":         "L'ID du joueur est obligatoire",
	"nouvelleEquipeId.required": "L'ID de la nouvelle équipe est obligatoire",
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(validateBudget, teamdto.CreateTeamRequest{})
	return v
}

// validateBudget enforces the numeric(19,2) bounds on the exact decimal value.
// Struct-level checks run after the field tags, so required and gt are reported first.
func validateBudget(sl validator.StructLevel) {
	req := sl.Current().Interface().(teamdto.CreateTeamRequest)
	if req.Budget == nil {
		return
	}
	budget := *req.Budget
	switch {
	case !budget.Equal(budget.Truncate(budgetScale)):
		sl.ReportError(req.Budget, "budget", "Budget", "scale", strconv.Itoa(budgetScale))
	case budget.GreaterThanOrEqual(maxBudget):
		sl.ReportError(req.Budget, "budget", "Budget", "lt", maxBudget.String())
	}
}

// toValidationErrors converts validator output; any other error is returned as-is.
func toValidationErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldKey(fe.Namespace())
		if _, taken := out[field]; taken {
			continue
		}
		out[field] = messageFor(field, fe)
	}
	return out
}

// fieldKey drops the root struct name from a namespace like "CreateTeamRequest.joueurs[0].name".
func fieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(field string, fe validator.FieldError) string {
	key := fe.Field() + "." + fe.Tag()
	if strings.HasPrefix(field, "joueurs[") {
		key = "joueur." + key
	}
	if msg, ok := fieldMessages[key]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "gt":
		return "must be greater than " + fe.Param()
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
