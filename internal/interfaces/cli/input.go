package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// prompt escribe la etiqueta y devuelve la línea ingresada sin espacios
// extremos. Devuelve false si la entrada se agotó (EOF).
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptFloat lee un número; entrada no numérica se reporta como inválida.
func (m *Menu) promptFloat(label string) (float64, error) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, errors.New("entrada agotada")
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q no es un número válido", raw)
	}
	return n, nil
}

// validateInput aplica las etiquetas validate del DTO y traduce los errores a
// mensajes legibles. La validación de rangos vive aquí, en el borde de
// entrada: al núcleo nunca llega un rating fuera de 0–5 por esta vía.
func (m *Menu) validateInput(in any) error {
	err := m.validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// fieldError convierte un error de validación de campo en un mensaje legible.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " es obligatorio"
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no pasó la validación (%s)", field, fe.Tag())
	}
}
