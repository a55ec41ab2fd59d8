package payload_test

import (
	"context"
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustDesk/pkg/app/payload"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/attachment"
	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
	"github.com/NeuralTrust/TrustDesk/pkg/plugins/data_masking"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreparer(opts payload.Options) payload.Preparer {
	logger, _ := test.NewNullLogger()
	return payload.NewPreparer(
		logger,
		data_masking.NewMasker(logger),
		attachment.NewExtractor(logger, attachment.Config{}),
		opts,
	)
}

func TestPrepare_PlainMessage(t *testing.T) {
	p := newPreparer(payload.Options{})
	safe := p.Prepare(context.Background(), payload.Input{
		Message: "  Je n'ai pas été remboursé pour ma consultation.  ",
	})

	assert.Equal(t, "Je n'ai pas été remboursé pour ma consultation.", safe.Text)
	assert.NotNil(t, safe.PIIFound)
	assert.Empty(t, safe.PIIFound)
	assert.False(t, safe.Blocked)
	assert.Nil(t, safe.BlockReason)
}

func TestPrepare_EmailRedacted(t *testing.T) {
	p := newPreparer(payload.Options{})
	safe := p.Prepare(context.Background(), payload.Input{
		Message: "Écrivez-moi à jean.dupont@gmail.com",
	})

	assert.NotContains(t, safe.Text, "jean.dupont@gmail.com")
	assert.Contains(t, safe.Text, "[EMAIL]")
	assert.Equal(t, []pii_entities.Entity{pii_entities.Email}, safe.PIIFound)
}

func TestPrepare_IBAN(t *testing.T) {
	msg := "Mon IBAN est FR76 3000 6000 0112 3456 7890 189"

	t.Run("redaction only", func(t *testing.T) {
		safe := newPreparer(payload.Options{}).Prepare(context.Background(), payload.Input{Message: msg})
		assert.False(t, safe.Blocked)
		assert.Nil(t, safe.BlockReason)
		assert.Equal(t, "Mon IBAN est [IBAN]", safe.Text)
	})

	t.Run("hard block", func(t *testing.T) {
		safe := newPreparer(payload.Options{HardBlock: true}).Prepare(context.Background(), payload.Input{Message: msg})
		assert.True(t, safe.Blocked)
		require.NotNil(t, safe.BlockReason)
		assert.Contains(t, *safe.BlockReason, "iban")
		assert.NotContains(t, safe.Text, "FR76")
	})
}

func TestPrepare_HardBlockIgnoresLowRisk(t *testing.T) {
	safe := newPreparer(payload.Options{HardBlock: true}).Prepare(context.Background(), payload.Input{
		Message: "Appelez-moi au 06 12 34 56 78",
	})
	assert.False(t, safe.Blocked)
	assert.Equal(t, []pii_entities.Entity{pii_entities.Phone}, safe.PIIFound)
}

func TestPrepare_TruncatesMessageBeforeAttachment(t *testing.T) {
	p := newPreparer(payload.Options{MaxChars: 10})
	safe := p.Prepare(context.Background(), payload.Input{
		Message:        strings.Repeat("é", 50),
		Attachment:     []byte("contenu"),
		AttachmentName: "note.txt",
	})

	assert.Equal(t, strings.Repeat("é", 10)+"\n\n[EXTRAIT_PIECE_JOINTE: note.txt]\ncontenu", safe.Text)
}

func TestPrepare_ImageAttachment(t *testing.T) {
	p := newPreparer(payload.Options{})
	safe := p.Prepare(context.Background(), payload.Input{
		Message:        "Voici ma facture",
		Attachment:     []byte{0x89, 0x50, 0x4e, 0x47},
		AttachmentName: "facture.png",
	})

	assert.Equal(t, "Voici ma facture\n\n[EXTRAIT_PIECE_JOINTE: facture.png]\n[Image fournie: OCR désactivé en démo]", safe.Text)
}

func TestPrepare_AttachmentIsRedacted(t *testing.T) {
	p := newPreparer(payload.Options{HardBlock: true})
	safe := p.Prepare(context.Background(), payload.Input{
		Message:        "Voir pièce jointe",
		Attachment:     []byte("Carte: 4111 1111 1111 1111"),
		AttachmentName: "paiement.txt",
	})

	assert.NotContains(t, safe.Text, "4111")
	assert.True(t, safe.Blocked)
	assert.Equal(t, []pii_entities.Entity{pii_entities.CreditCard}, safe.PIIFound)
}

func TestPrepare_AttachmentNeedsNameAndBytes(t *testing.T) {
	p := newPreparer(payload.Options{})

	noName := p.Prepare(context.Background(), payload.Input{Message: "Bonjour", Attachment: []byte("x")})
	assert.Equal(t, "Bonjour", noName.Text)

	noBytes := p.Prepare(context.Background(), payload.Input{Message: "Bonjour", AttachmentName: "a.txt"})
	assert.Equal(t, "Bonjour", noBytes.Text)
}
