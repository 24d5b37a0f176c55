package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type MarotoProvider struct{}

// New creates the maroto-backed invoice renderer
func New() Provider {
	return &MarotoProvider{}
}

func (p *MarotoProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	title := "Invoice"
	if data.InvoiceName != "" {
		title = data.InvoiceName
	}
	m.AddRow(14,
		text.NewCol(12, title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(14,
		col.New(6).Add(
			text.New("Invoice number: "+data.InvoiceNumber, props.Text{Top: 0}),
			text.New("Invoice date: "+data.InvoiceDate, props.Text{Top: 5}),
		),
		col.New(6),
	)

	m.AddRow(42,
		partyCol(6, "Billed by", data.BillFrom),
		partyCol(6, "Billed to", data.BillTo),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(9, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range data.Items {
		name := item.Name
		if item.IsExtraCost {
			name = name + " (extra charge)"
		}
		m.AddRow(8,
			text.NewCol(9, name, props.Text{Size: 9}),
			text.NewCol(3, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(2, line.NewCol(12))

	m.AddRow(8,
		col.New(7),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(3, data.Subtotal, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(7),
		text.NewCol(2, "Charges", props.Text{Size: 9}),
		text.NewCol(3, data.ChargesTotal, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(3, data.GrandTotal, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func partyCol(size int, label string, party PartyData) core.Col {
	c := col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold}),
		text.New(party.Name, props.Text{Top: 5}),
	)
	top := 10.0
	for _, detail := range []string{party.Address, party.Phone, party.Email} {
		if detail == "" {
			continue
		}
		c.Add(text.New(detail, props.Text{Top: top, Size: 9}))
		top += 5
	}
	if party.GSTNumber != "" {
		c.Add(text.New("GST: "+party.GSTNumber, props.Text{Top: top, Size: 9}))
	}
	return c
}
