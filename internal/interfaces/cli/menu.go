// Package cli implementa el bucle de menú interactivo de la tienda. Todo el
// prompting y parseo de consola vive aquí; el núcleo solo recibe entradas ya
// validadas y devuelve resultados o errores de dominio reportables.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/shop"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Menu bucle interactivo sobre la tienda. Lee de in y escribe a out para que
// los tests puedan manejar la sesión completa sin consola real.
type Menu struct {
	shop     *shop.Shop
	log      *logger.Logger
	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

// New construye el menú sobre la tienda dada.
func New(s *shop.Shop, log *logger.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		shop:     s,
		log:      log,
		in:       bufio.NewScanner(in),
		out:      out,
		validate: validator.New(),
	}
}

// Run pide credenciales una vez y entra al menú de la variante autenticada.
// Toda falla es reportable y el proceso termina normalmente (exit 0 siempre).
func (m *Menu) Run() {
	username, ok := m.prompt("Usuario: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Password: ")
	if !ok {
		return
	}

	actor, err := m.shop.Authenticate(username, password)
	if err != nil {
		fmt.Fprintln(m.out, "Credenciales inválidas")
		return
	}

	m.log.Debug().Str("user", actor.Username()).Str("role", actor.Role()).Msg("sesión iniciada")
	fmt.Fprintf(m.out, "Bienvenido, %s!\n", actor.Username())
	if actor.IsAdmin() {
		m.adminLoop(actor)
		return
	}
	m.userLoop(actor)
}

func (m *Menu) userLoop(actor *entity.User) {
	for {
		choice, ok := m.prompt("Acción: 1=Ver productos, 2=Comprar, 3=Historial, 4=Cambiar password, 5=Salir: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.printProducts(m.shop.ViewProducts())
		case "2":
			m.buyProduct(actor)
		case "3":
			fmt.Fprintln(m.out, "Historial de compras:", actor.History())
		case "4":
			m.changePassword(actor)
		case "5":
			return
		default:
			fmt.Fprintln(m.out, "Opción desconocida")
		}
	}
}

func (m *Menu) adminLoop(actor *entity.User) {
	for {
		choice, ok := m.prompt("Acción: 1=Agregar, 2=Eliminar, 3=Ordenar por precio, 4=Filtrar por precio, 5=Salir: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.addProduct(actor)
		case "2":
			m.removeProduct(actor)
		case "3":
			m.printProducts(m.shop.SortProductsByPrice())
		case "4":
			m.filterProducts()
		case "5":
			return
		default:
			fmt.Fprintln(m.out, "Opción desconocida")
		}
	}
}

func (m *Menu) addProduct(actor *entity.User) {
	name, ok := m.prompt("Nombre del producto: ")
	if !ok {
		return
	}
	price, err := m.promptFloat("Precio: ")
	if err != nil {
		fmt.Fprintln(m.out, "Entrada inválida:", err)
		return
	}
	rating, err := m.promptFloat("Rating (0-5): ")
	if err != nil {
		fmt.Fprintln(m.out, "Entrada inválida:", err)
		return
	}

	req := dto.AddProductRequest{Name: name, Price: price, Rating: rating}
	if err := m.validateInput(req); err != nil {
		fmt.Fprintln(m.out, "Entrada inválida:", err)
		return
	}
	if err := m.shop.AddProduct(actor, req); err != nil {
		fmt.Fprintln(m.out, "No se pudo agregar:", err)
		return
	}
	fmt.Fprintf(m.out, "%s agregado!\n", name)
}

func (m *Menu) removeProduct(actor *entity.User) {
	name, ok := m.prompt("Nombre del producto a eliminar: ")
	if !ok {
		return
	}
	err := m.shop.RemoveProduct(actor, name)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		fmt.Fprintf(m.out, "%s no encontrado!\n", name)
	case err != nil:
		fmt.Fprintln(m.out, "No se pudo eliminar:", err)
	default:
		fmt.Fprintf(m.out, "%s eliminado!\n", name)
	}
}

func (m *Menu) buyProduct(actor *entity.User) {
	name, ok := m.prompt("Nombre del producto a comprar: ")
	if !ok {
		return
	}
	err := m.shop.BuyProduct(actor, name)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		fmt.Fprintf(m.out, "%s no encontrado!\n", name)
	case err != nil:
		fmt.Fprintln(m.out, "No se pudo comprar:", err)
	default:
		fmt.Fprintf(m.out, "%s comprado!\n", name)
	}
}

func (m *Menu) changePassword(actor *entity.User) {
	newPassword, ok := m.prompt("Nuevo password: ")
	if !ok {
		return
	}
	if err := m.shop.ChangePassword(actor, newPassword); err != nil {
		fmt.Fprintln(m.out, "No se pudo actualizar:", err)
		return
	}
	fmt.Fprintln(m.out, "Password actualizado!")
}

func (m *Menu) filterProducts() {
	threshold, err := m.promptFloat("Precio máximo (exclusivo): ")
	if err != nil {
		fmt.Fprintln(m.out, "Entrada inválida:", err)
		return
	}
	m.printProducts(m.shop.FilterProductsByPrice(decimal.NewFromFloat(threshold)))
}

func (m *Menu) printProducts(views []dto.ProductView) {
	if len(views) == 0 {
		fmt.Fprintln(m.out, "Sin productos")
		return
	}
	for _, v := range views {
		fmt.Fprintf(m.out, "Producto: %s, Precio: %s, Rating: %g\n", v.Name, v.Price.String(), v.Rating)
	}
}
