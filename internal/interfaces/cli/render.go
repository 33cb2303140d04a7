package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jhoicas/insurapro-crm/internal/application/dto"
)

// renderCustomerList imprime el listado de clientes como tabla.
func renderCustomerList(w io.Writer, list []dto.CustomerSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Nombre", "Email", "Teléfono", "Código Fiscal", "Interacciones"})
	for _, c := range list {
		t.AppendRow(table.Row{c.Position, c.FullName, c.Email, c.Phone, c.TaxCode, c.Interactions})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderCustomerDetail imprime la ficha completa de un cliente.
func renderCustomerDetail(w io.Writer, c *dto.CustomerDetail) {
	fmt.Fprintf(w, "\nCliente #%d\n", c.Position)
	fmt.Fprintf(w, "  Nombre:         %s\n", c.FirstName)
	fmt.Fprintf(w, "  Apellido:       %s\n", c.LastName)
	fmt.Fprintf(w, "  Email:          %s\n", c.Email)
	fmt.Fprintf(w, "  Teléfono:       %s\n", c.Phone)
	fmt.Fprintf(w, "  Dirección:      %s\n", c.Address)
	fmt.Fprintf(w, "  Código Fiscal:  %s\n", c.TaxCode)
	fmt.Fprintf(w, "  Nacimiento:     %s\n", c.BirthDate)
	fmt.Fprintf(w, "  Interacciones:  %d\n", c.Interactions)
}

// renderInteractions imprime las interacciones de un cliente como tabla.
func renderInteractions(w io.Writer, list []dto.InteractionDetail) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Fecha", "Hora", "Tipo", "Agente", "Descripción", "Resultado"})
	for _, in := range list {
		t.AppendRow(table.Row{in.Position, in.Date, in.Time, in.Kind, in.Agent, in.Description, in.Outcome})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderInteractionMatches imprime los resultados de búsqueda de
// interacciones, cada uno con su cliente propietario.
func renderInteractionMatches(w io.Writer, matches []dto.InteractionMatch) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Cliente", "Código Fiscal", "#", "Fecha", "Hora", "Tipo", "Descripción"})
	for _, m := range matches {
		t.AppendRow(table.Row{
			m.CustomerName, m.TaxCode,
			m.Interaction.Position, m.Interaction.Date, m.Interaction.Time,
			m.Interaction.Kind, m.Interaction.Description,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
