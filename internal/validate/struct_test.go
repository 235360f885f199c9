package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Name    string   `form:"name" validate:"name"`
	Contact string   `form:"contact" validate:"contact"`
	Phone   string   `form:"phone" validate:"phone"`
	Date    string   `form:"date" validate:"notpast"`
	Time    string   `form:"time" validate:"timeslot"`
	Guests  int      `form:"guests" validate:"min=1,max=20"`
	Items   []string `form:"items" validate:"min=1"`
	Plan    string   `form:"plan" validate:"required,oneof=explorer collector"`
	Note    string
}

func validBooking() bookingForm {
	return bookingForm{
		Name:    "Jane",
		Contact: "@jane",
		Phone:   "+1 (555) 123-4567",
		Date:    "2026-03-15",
		Time:    "18:00",
		Guests:  2,
		Items:   []string{"coffee-0-M"},
		Plan:    "explorer",
	}
}

func TestStructAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 23, 0, 0, 0, time.UTC)

	t.Run("Valid form", func(t *testing.T) {
		assert.Nil(t, StructAt(validBooking(), now))
		assert.NoError(t, StructAt(validBooking(), now).Err())
	})

	t.Run("Reports every field in declaration order", func(t *testing.T) {
		f := bookingForm{
			Name:    "J",
			Contact: "ab",
			Phone:   "12",
			Date:    "2026-03-14",
			Time:    "21:00",
			Guests:  21,
		}

		errs := StructAt(f, now)

		assert.Equal(t, []string{"name", "contact", "phone", "date", "time", "guests", "items", "plan"}, errs.Fields())
		err := errs.Err()
		assert.ErrorIs(t, err, ErrInvalidName)
		assert.ErrorIs(t, err, ErrInvalidContact)
		assert.ErrorIs(t, err, ErrInvalidPhone)
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		assert.ErrorIs(t, err, ErrInvalidGuests)
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})

	t.Run("Date follows the supplied clock", func(t *testing.T) {
		f := validBooking()
		f.Date = "2026-03-16"

		assert.Nil(t, StructAt(f, now))
		assert.Equal(t, []string{"date"}, StructAt(f, now.AddDate(0, 0, 2)).Fields())
	})

	t.Run("Guests bounds are inclusive", func(t *testing.T) {
		f := validBooking()
		f.Guests = 20
		assert.Nil(t, StructAt(f, now))

		f.Guests = 0
		assert.Equal(t, []string{"guests"}, StructAt(f, now).Fields())
	})

	t.Run("Unknown plan", func(t *testing.T) {
		f := validBooking()
		f.Plan = "barista"
		assert.Equal(t, []string{"plan"}, StructAt(f, now).Fields())
	})
}

func TestStruct_AppendsManualChecks(t *testing.T) {
	f := validBooking()
	f.Phone = "n/a"

	errs := Struct(f)
	errs.Check("total", false, ErrEmptyCart)

	require.Len(t, errs, 2)
	assert.Equal(t, []string{"phone", "total"}, errs.Fields())
}

func TestStruct_NotAStruct(t *testing.T) {
	errs := Struct("jane")

	require.Len(t, errs, 1)
	assert.Equal(t, "form", errs[0].Field)
}
