package bot

import (
	"fmt"
	"strconv"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/reservation"
)

// Keyboards are the ordered sets of next actions each screen offers.
// The delivery channel renders them as buttons.

func (m *Machine) mainButtons() []domain.Button {
	return []domain.Button{
		{Label: "Meniu", Action: codeMenu},
		{Label: "Rezervare loc", Action: codeReservation},
		{Label: "Finalizează comanda", Action: codeFinalize},
		{Label: "Anulare rezervare", Action: codeCancel},
		{Label: "Statut rezervare", Action: codeStatus},
		{Label: "Contacte manager", Action: codeContacts},
	}
}

func (m *Machine) menuButtons(session *domain.Session) []domain.Button {
	items := m.catalog.Items()
	buttons := make([]domain.Button, 0, len(items)+1)
	for _, item := range items {
		label := fmt.Sprintf("%s - %s", item.Name, money(item.Price))
		if qty := session.Cart[item.ID]; qty > 0 {
			label += fmt.Sprintf(" (x%d)", qty)
		}
		buttons = append(buttons, domain.Button{Label: label, Action: prefixItem + item.ID})
	}
	return append(buttons, domain.Button{Label: "Înapoi", Action: codeBackToMain})
}

var offeredQuantities = []int{1, 2, 3, 5, 10, 15, 20, 50}

func (m *Machine) quantityButtons(itemID string) []domain.Button {
	buttons := make([]domain.Button, 0, len(offeredQuantities)+1)
	for _, q := range offeredQuantities {
		buttons = append(buttons, domain.Button{
			Label:  fmt.Sprintf("x%d", q),
			Action: fmt.Sprintf("%s%s_%d", prefixQuantity, itemID, q),
		})
	}
	return append(buttons, domain.Button{Label: "Înapoi la meniu", Action: codeMenu})
}

func (m *Machine) reservationTypeButtons() []domain.Button {
	return []domain.Button{
		{Label: "La masă", Action: codeReservationTable},
		{Label: "La pachet", Action: codeReservationTakeout},
		{Label: "Înapoi", Action: codeBackToMain},
	}
}

func (m *Machine) timeButtons() []domain.Button {
	slots := reservation.Slots()
	buttons := make([]domain.Button, 0, len(slots)+1)
	for _, slot := range slots {
		buttons = append(buttons, domain.Button{Label: slot, Action: prefixTime + slot})
	}
	return append(buttons, domain.Button{Label: "Înapoi", Action: codeBack})
}

func (m *Machine) peopleButtons() []domain.Button {
	buttons := make([]domain.Button, 0, reservation.MaxOfferedPartySize+1)
	for n := 1; n <= reservation.MaxOfferedPartySize; n++ {
		buttons = append(buttons, domain.Button{
			Label:  strconv.Itoa(n),
			Action: prefixPeople + strconv.Itoa(n),
		})
	}
	return append(buttons, domain.Button{Label: "Înapoi", Action: codeBack})
}
