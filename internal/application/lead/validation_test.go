package lead_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/lead"
	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

func validContact() dto.ContactRequest {
	return dto.ContactRequest{
		Name:    "Amina Yusuf",
		Email:   "amina@example.com",
		Topic:   "Bulk Orders",
		Message: "Need 200 MT of PP 500P delivered to Jebel Ali.",
	}
}

func validRFQ() dto.RFQRequest {
	return dto.RFQRequest{
		ContactName: "Amina Yusuf",
		CompanyName: "Gulf Plastics LLC",
		Email:       "amina@example.com",
		Phone:       "+971501234567",
		Destination: "Jebel Ali, UAE",
		Items: []dto.QuoteItemRequest{
			{ProductCode: "PP 500P", GradeType: "Prime", Quantity: "25", Unit: "MT"},
		},
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	var verr *lead.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func TestContact_Valido(t *testing.T) {
	msg, err := lead.NewValidator().Contact(validContact())
	require.NoError(t, err)
	assert.Equal(t, "Bulk Orders", msg.Topic)
	assert.Empty(t, msg.ID, "el id lo asigna el caso de uso")
}

func TestContact_LongitudMensaje(t *testing.T) {
	v := lead.NewValidator()

	in := validContact()
	in.Message = strings.Repeat("a", 9)
	fields := fieldsOf(t, func() error { _, err := v.Contact(in); return err }())
	assert.Equal(t, "Message must be at least 10 characters", fields["message"])

	in.Message = strings.Repeat("a", 10)
	_, err := v.Contact(in)
	assert.NoError(t, err)

	// Los espacios se recortan antes de medir.
	in.Message = "   " + strings.Repeat("a", 9) + "   "
	_, err = v.Contact(in)
	assert.Error(t, err)
}

func TestContact_EmailSinArroba(t *testing.T) {
	in := validContact()
	in.Email = "amina.example.com"
	_, err := lead.NewValidator().Contact(in)
	fields := fieldsOf(t, err)
	assert.Equal(t, "Please enter a valid email address", fields["email"])
}

func TestContact_Temas(t *testing.T) {
	v := lead.NewValidator()
	for _, topic := range entity.ContactTopics {
		in := validContact()
		in.Topic = topic
		_, err := v.Contact(in)
		assert.NoError(t, err, topic)
	}

	for _, topic := range []string{"", "Complaints", "bulk orders"} {
		in := validContact()
		in.Topic = topic
		_, err := v.Contact(in)
		fields := fieldsOf(t, err)
		assert.Equal(t, "Please select a topic", fields["topic"], "tema %q", topic)
	}
}

func TestContact_CamposOpcionales(t *testing.T) {
	v := lead.NewValidator()

	in := validContact()
	in.Phone = "12345"
	_, err := v.Contact(in)
	assert.Equal(t, "Please enter a valid phone number", fieldsOf(t, err)["phone"])

	in = validContact()
	in.Phone = "+66 4008 9799"
	in.Company = "Siam Resins"
	_, err = v.Contact(in)
	assert.NoError(t, err)

	in = validContact()
	in.Company = strings.Repeat("c", 101)
	_, err = v.Contact(in)
	assert.Equal(t, "Company name must be less than 100 characters", fieldsOf(t, err)["company"])
}

func TestContact_NombreCorto(t *testing.T) {
	in := validContact()
	in.Name = " A "
	_, err := lead.NewValidator().Contact(in)
	assert.Equal(t, "Name must be at least 2 characters", fieldsOf(t, err)["name"])
}

func TestRFQ_Valida(t *testing.T) {
	in := validRFQ()
	in.Items = append(in.Items,
		dto.QuoteItemRequest{ProductCode: "HE3490-LS", Quantity: 12.5},
		dto.QuoteItemRequest{ProductCode: "", Quantity: "10"},
		dto.QuoteItemRequest{ProductCode: "PET BC112"},
	)
	rfq, err := lead.NewValidator().RFQ(in)
	require.NoError(t, err)

	require.Len(t, rfq.Items, 2, "solo se envían las líneas completas")
	assert.Equal(t, "PP 500P", rfq.Items[0].ProductCode)
	assert.Equal(t, entity.GradePrime, rfq.Items[0].GradeType)
	assert.True(t, rfq.Items[0].Quantity.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "HE3490-LS", rfq.Items[1].ProductCode)
	assert.True(t, rfq.Items[1].Quantity.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, entity.DefaultQuoteUnit, rfq.Items[1].Unit)
	assert.Empty(t, rfq.Items[1].GradeType)
}

func TestRFQ_SinLineaCompleta_RechazadaAunqueContactoValido(t *testing.T) {
	v := lead.NewValidator()
	cases := map[string][]dto.QuoteItemRequest{
		"sin líneas":       nil,
		"solo código":      {{ProductCode: "PP 500P"}},
		"solo cantidad":    {{Quantity: "5"}},
		"cantidad vacía":   {{ProductCode: "PP 500P", Quantity: "  "}},
		"código en blanco": {{ProductCode: "   ", Quantity: 3}},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			in := validRFQ()
			in.Items = items
			_, err := v.RFQ(in)
			fields := fieldsOf(t, err)
			assert.Equal(t, "Please add at least one product with code and quantity", fields["items"])
		})
	}
}

func TestRFQ_ErroresDeContactoYLineasSeAcumulan(t *testing.T) {
	in := validRFQ()
	in.Email = "nope"
	in.Phone = ""
	in.Items = nil
	_, err := lead.NewValidator().RFQ(in)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "items")
}

func TestRFQ_CantidadInvalida(t *testing.T) {
	v := lead.NewValidator()

	in := validRFQ()
	in.Items = []dto.QuoteItemRequest{{ProductCode: "PP 500P", Quantity: "twenty"}}
	_, err := v.RFQ(in)
	fields := fieldsOf(t, err)
	assert.Equal(t, "Please enter a valid quantity", fields["items[0].quantity"])

	in.Items = []dto.QuoteItemRequest{{ProductCode: "PP 500P", Quantity: "0"}}
	_, err = v.RFQ(in)
	fields = fieldsOf(t, err)
	assert.Equal(t, "Quantity must be greater than 0", fields["items[0].quantity"])
}

func TestRFQ_GradoYUnidadDeLinea(t *testing.T) {
	v := lead.NewValidator()

	in := validRFQ()
	in.Items = []dto.QuoteItemRequest{{ProductCode: "PP 500P", Quantity: "1", GradeType: "Premium", Unit: "TON"}}
	_, err := v.RFQ(in)
	fields := fieldsOf(t, err)
	assert.Equal(t, "Please select a valid grade type", fields["items[0].grade_type"])
	assert.Equal(t, "Please select a valid unit", fields["items[0].unit"])

	in.Items = []dto.QuoteItemRequest{{ProductCode: "PP 500P", Quantity: "1", GradeType: "off-spec", Unit: "kg"}}
	rfq, err := v.RFQ(in)
	require.NoError(t, err)
	assert.Equal(t, entity.GradeOffSpec, rfq.Items[0].GradeType)
	assert.Equal(t, "KG", rfq.Items[0].Unit)
}
