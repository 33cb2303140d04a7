// Package cli es la capa de orquestación: dibuja los menús, recoge texto
// plano del operador y lo reenvía al almacén. No contiene lógica de dominio;
// el núcleo nunca lee ni escribe la terminal.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chzyer/readline"

	"github.com/jhoicas/insurapro-crm/internal/application/crm"
	"github.com/jhoicas/insurapro-crm/internal/application/dto"
	"github.com/jhoicas/insurapro-crm/internal/domain"
	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/pkg/logger"
)

// Menu bucle interactivo principal.
type Menu struct {
	store *crm.Store
	rl    *readline.Instance
	out   io.Writer
	log   *logger.Logger
}

// New construye el menú sobre readline.
func New(store *crm.Store, log *logger.Logger) (*Menu, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("inicializar readline: %w", err)
	}
	return &Menu{store: store, rl: rl, out: os.Stdout, log: log}, nil
}

// Close libera la terminal.
func (m *Menu) Close() error {
	return m.rl.Close()
}

// Run ejecuta el bucle principal hasta que el operador elige salir. Al salir
// guarda automáticamente, como hacía el sistema original.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "Bienvenido a InsuraPro Solutions CRM")
	for {
		fmt.Fprint(m.out, `
=== MENÚ PRINCIPAL ===
1. Agregar cliente
2. Ver todos los clientes
3. Modificar cliente
4. Eliminar cliente
5. Buscar clientes
6. Gestionar interacciones
7. Guardar datos
8. Cargar datos
0. Salir
`)
		choice, err := m.prompt("Opción: ")
		if err != nil {
			return m.exit()
		}
		switch choice {
		case "1":
			m.addCustomer()
		case "2":
			m.listCustomers()
		case "3":
			m.updateCustomer()
		case "4":
			m.deleteCustomer()
		case "5":
			m.searchCustomers()
		case "6":
			if err := m.interactionsMenu(); err != nil {
				return m.exit()
			}
		case "7":
			m.report(m.store.Save(), "Datos guardados con éxito.")
		case "8":
			m.report(m.store.Load(), "Datos cargados con éxito.")
		case "0":
			return m.exit()
		default:
			fmt.Fprintln(m.out, "Opción no válida.")
		}
	}
}

func (m *Menu) exit() error {
	fmt.Fprintln(m.out, "Guardando datos...")
	m.log.Info().Msg("sesión finalizada, guardado automático")
	if err := m.store.Save(); err != nil {
		fmt.Fprintln(m.out, "Error al guardar:", err)
		return err
	}
	fmt.Fprintln(m.out, "Gracias por usar InsuraPro Solutions CRM.")
	return nil
}

// prompt muestra la etiqueta y devuelve la línea leída tal cual.
func (m *Menu) prompt(label string) (string, error) {
	m.rl.SetPrompt(label)
	line, err := m.rl.Readline()
	if err != nil { // io.EOF o interrupción: tratar como salida
		return "", err
	}
	return line, nil
}

// mustPrompt como prompt pero convierte el error en cadena vacía; para los
// campos de formulario donde una línea vacía ya significa "sin valor".
func (m *Menu) mustPrompt(label string) string {
	s, err := m.prompt(label)
	if err != nil {
		return ""
	}
	return s
}

// report imprime el mensaje de éxito o el error de la operación.
func (m *Menu) report(err error, okMsg string) {
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintln(m.out, okMsg)
}

func (m *Menu) addCustomer() {
	fmt.Fprintln(m.out, "\n=== AGREGAR CLIENTE ===")
	in := dto.CreateCustomerRequest{
		FirstName: m.mustPrompt("Nombre: "),
		LastName:  m.mustPrompt("Apellido: "),
		Email:     m.mustPrompt("Email: "),
		Phone:     m.mustPrompt("Teléfono: "),
		Address:   m.mustPrompt("Dirección: "),
		TaxCode:   m.mustPrompt("Código Fiscal: "),
		BirthDate: m.mustPrompt("Fecha de nacimiento (DD/MM/YYYY): "),
	}
	m.report(m.store.AddCustomer(in), "Cliente agregado con éxito.")
}

func (m *Menu) listCustomers() {
	list, err := m.store.ListAll()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	renderCustomerList(m.out, list)
}

func (m *Menu) updateCustomer() {
	fmt.Fprintln(m.out, "\n=== MODIFICAR CLIENTE ===")
	taxCode := m.mustPrompt("Código fiscal del cliente: ")
	fmt.Fprintln(m.out, "Deja vacío cualquier campo que no quieras modificar.")
	in := dto.UpdateCustomerRequest{
		FirstName: m.mustPrompt("Nuevo nombre: "),
		LastName:  m.mustPrompt("Nuevo apellido: "),
		Email:     m.mustPrompt("Nuevo email: "),
		Phone:     m.mustPrompt("Nuevo teléfono: "),
		Address:   m.mustPrompt("Nueva dirección: "),
		BirthDate: m.mustPrompt("Nueva fecha de nacimiento: "),
	}
	m.report(m.store.UpdateCustomer(taxCode, in), "Cliente modificado con éxito.")
}

func (m *Menu) deleteCustomer() {
	fmt.Fprintln(m.out, "\n=== ELIMINAR CLIENTE ===")
	taxCode := m.mustPrompt("Código fiscal del cliente: ")
	c, err := m.store.FindByTaxCode(taxCode)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintf(m.out, "Vas a eliminar a %s %s y sus %d interacciones.\n",
		c.FirstName, c.LastName, c.Interactions)
	confirm := m.mustPrompt("¿Estás seguro? (si/no): ")
	deleted, err := m.store.DeleteCustomer(taxCode, confirm)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	if !deleted {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return
	}
	fmt.Fprintln(m.out, "Cliente eliminado con éxito.")
}

func (m *Menu) searchCustomers() {
	fmt.Fprintln(m.out, "\n=== BUSCAR CLIENTES ===")
	query := m.mustPrompt("Término de búsqueda: ")
	results, err := m.store.SearchCustomers(query)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	for i := range results {
		renderCustomerDetail(m.out, &results[i])
	}
}

func (m *Menu) interactionsMenu() error {
	for {
		fmt.Fprint(m.out, `
=== GESTIÓN DE INTERACCIONES ===
1. Agregar interacción
2. Ver interacciones de un cliente
3. Buscar interacciones
4. Eliminar interacción
5. Modificar interacción
0. Volver al menú principal
`)
		choice, err := m.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			m.addInteraction()
		case "2":
			m.listInteractions()
		case "3":
			m.searchInteractions()
		case "4":
			m.removeInteraction()
		case "5":
			m.updateInteraction()
		case "0":
			return nil
		default:
			fmt.Fprintln(m.out, "Opción no válida.")
		}
	}
}

// chooseKind muestra el menú de tipos y repite hasta una elección válida.
func (m *Menu) chooseKind() entity.Kind {
	kinds := entity.AllKinds()
	for {
		fmt.Fprintln(m.out, "Tipo de interacción:")
		for i, k := range kinds {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, k)
		}
		choice := m.mustPrompt("Opción: ")
		n, err := strconv.Atoi(choice)
		if err == nil && n >= 1 && n <= len(kinds) {
			return kinds[n-1]
		}
		fmt.Fprintln(m.out, "Opción no válida.")
	}
}

func (m *Menu) addInteraction() {
	fmt.Fprintln(m.out, "\n=== AGREGAR INTERACCIÓN ===")
	taxCode := m.mustPrompt("Código fiscal del cliente: ")
	if _, err := m.store.FindByTaxCode(taxCode); err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	in := dto.CreateInteractionRequest{
		Date: m.mustPrompt("Fecha (DD/MM/YYYY): "),
		Time: m.mustPrompt("Hora (HH:MM): "),
		Kind: m.chooseKind(),
	}
	in.Description = m.mustPrompt("Descripción: ")
	in.Agent = m.mustPrompt("Agente: ")
	in.Outcome = m.mustPrompt("Resultado: ")
	m.report(m.store.AddInteraction(taxCode, in), "Interacción agregada con éxito.")
}

func (m *Menu) listInteractions() {
	taxCode := m.mustPrompt("Código fiscal del cliente: ")
	list, err := m.store.ListInteractions(taxCode)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "Este cliente no tiene interacciones registradas.")
		return
	}
	renderInteractions(m.out, list)
}

func (m *Menu) searchInteractions() {
	fmt.Fprintln(m.out, "\n=== BUSCAR INTERACCIONES ===")
	query := m.mustPrompt("Término de búsqueda: ")
	matches, err := m.store.SearchInteractions(query)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	renderInteractionMatches(m.out, matches)
}

func (m *Menu) removeInteraction() {
	taxCode := m.mustPrompt("Código fiscal del cliente: ")
	pos, ok := m.promptPosition()
	if !ok {
		return
	}
	m.report(m.store.RemoveInteraction(taxCode, pos), "Interacción eliminada con éxito.")
}

func (m *Menu) updateInteraction() {
	taxCode := m.mustPrompt("Código fiscal del cliente: ")
	pos, ok := m.promptPosition()
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "Deja vacío cualquier campo que no quieras modificar.")
	in := dto.UpdateInteractionRequest{
		Date: m.mustPrompt("Nueva fecha (DD/MM/YYYY): "),
		Time: m.mustPrompt("Nueva hora (HH:MM): "),
	}
	if m.mustPrompt("¿Cambiar el tipo? (si/no): ") == "si" {
		k := m.chooseKind()
		in.Kind = &k
	}
	in.Description = m.mustPrompt("Nueva descripción: ")
	in.Agent = m.mustPrompt("Nuevo agente: ")
	in.Outcome = m.mustPrompt("Nuevo resultado: ")
	m.report(m.store.UpdateInteraction(taxCode, pos, in), "Interacción modificada con éxito.")
}

func (m *Menu) promptPosition() (int, bool) {
	s := m.mustPrompt("Número de interacción: ")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		fmt.Fprintln(m.out, "Error:", domain.ErrInvalidInput)
		return 0, false
	}
	return n, true
}
