package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/order"
)

// Plain-text rendering of the bot's replies. Emoji and rich formatting are
// the delivery channel's job; the core emits plain Romanian text.

const (
	welcomeText = "Bine ați venit la Restaurant Cezar!\n\nVă rugăm să alegeți o opțiune din meniul de mai jos:"
	menuText    = "Meniu Restaurant Cezar:\n\nAlegeți produsul dorit:"
	divider     = "━━━━━━━━━━━━━━━━━━━━"

	timestampLayout = "02.01.2006 15:04"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(1) + " MDL"
}

func itemText(item domain.CatalogItem, currentQty int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nPreț: %s", item.Name, money(item.Price))
	if currentQty > 0 {
		fmt.Fprintf(&b, " (În coș: %d)", currentQty)
	}
	b.WriteString("\n\nAlegeți cantitatea de adăugat:")
	return b.String()
}

func writeReservationDetails(b *strings.Builder, orderType domain.OrderType, slot string, partySize int) {
	fmt.Fprintf(b, "Tip comandă: %s\n", orderType)
	if slot != "" {
		fmt.Fprintf(b, "Ora: %s\n", slot)
	}
	if orderType == domain.OrderTypeDineIn && partySize > 0 {
		fmt.Fprintf(b, "Numărul de persoane: %d\n", partySize)
	}
}

func writeLines(b *strings.Builder, lines []order.Line) {
	for _, line := range lines {
		fmt.Fprintf(b, "• %s x%d = %s\n", line.Item.Name, line.Quantity, money(line.Subtotal))
	}
}

func receiptText(session *domain.Session, lines []order.Line, total decimal.Decimal, completedAt time.Time) string {
	var b strings.Builder
	b.WriteString("COMANDĂ FINALIZATĂ\n\n")
	b.WriteString("Detalii comandă:\n")
	b.WriteString(divider + "\n")

	if session.OrderType != domain.OrderTypeNone {
		writeReservationDetails(&b, session.OrderType, session.Time, session.PartySize)
		b.WriteString(divider + "\n")
	}

	if len(lines) > 0 {
		b.WriteString("Produse comandate:\n")
		writeLines(&b, lines)
		b.WriteString(divider + "\n")
		fmt.Fprintf(&b, "TOTAL: %s\n", money(total))
	}

	fmt.Fprintf(&b, "Data: %s\n", completedAt.Format(timestampLayout))
	b.WriteString(divider + "\n")
	b.WriteString("Mulțumim pentru comandă! Vă așteptăm la Restaurant Cezar!")
	return b.String()
}

func statusText(session *domain.Session, lines []order.Line, currentTotal decimal.Decimal, snapshotLines []order.Line) string {
	var b strings.Builder
	b.WriteString("STATUT REZERVARE\n\n")

	if session.HasActivity() {
		b.WriteString("Comandă curentă (în progres):\n")
		b.WriteString(divider + "\n")

		if session.OrderType != domain.OrderTypeNone {
			writeReservationDetails(&b, session.OrderType, session.Time, session.PartySize)
		}
		if len(lines) > 0 {
			b.WriteString("Produse în coș:\n")
			writeLines(&b, lines)
			fmt.Fprintf(&b, "Total curent: %s\n", money(currentTotal))
		}
	} else {
		b.WriteString("Nu aveți nicio comandă curentă.\n")
	}

	if snap := session.LastCompletedOrder; snap != nil {
		b.WriteString("\n" + divider + "\n")
		b.WriteString("Ultima comandă finalizată:\n")
		if snap.OrderType != domain.OrderTypeNone {
			writeReservationDetails(&b, snap.OrderType, snap.Time, snap.PartySize)
		}
		if len(snapshotLines) > 0 {
			b.WriteString("Produse:\n")
			writeLines(&b, snapshotLines)
			fmt.Fprintf(&b, "Total: %s\n", money(snap.Total))
		}
		fmt.Fprintf(&b, "Data: %s\n", snap.CompletedAt.Format(timestampLayout))
	}

	return b.String()
}

func contactsText(c Contacts) string {
	var b strings.Builder
	b.WriteString("CONTACTE MANAGER\n\n")
	fmt.Fprintf(&b, "%s\n", c.Manager)
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Telefon: %s\n", c.Phone)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Program: %s\n", c.Hours)
	fmt.Fprintf(&b, "Adresă: %s\n", c.Address)
	b.WriteString(divider + "\n")
	b.WriteString("Sunați pentru rezervări speciale sau evenimente private!")
	return b.String()
}
