package invoices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollection_BareArray(t *testing.T) {
	data := `[{"id": 1, "reference_number": "R-1", "partner_name": "A", "total_amount": "10.00", "payment_state": "not_paid"},
	          {"id": 2, "reference_number": "R-2", "partner_name": "B", "total_amount": "20.00", "payment_state": "partial"}]`

	invs, err := DecodeCollection([]byte(data))
	require.NoError(t, err)
	require.Len(t, invs, 2)
	assert.Equal(t, 1, invs[0].ID)
	assert.Equal(t, "R-2", invs[1].ReferenceNumber)
}

func TestDecodeCollection_PaginatedEnvelope(t *testing.T) {
	data := `{"count": 1, "next": null, "results": [{"id": 7, "reference_number": "R-7", "partner_name": "C", "total_amount": "70.00", "payment_state": "not_paid"}]}`

	invs, err := DecodeCollection([]byte(data))
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, 7, invs[0].ID)
	assert.Equal(t, "C", invs[0].PartnerName)
}

func TestDecodeCollection_Empty(t *testing.T) {
	invs, err := DecodeCollection([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, invs)
}

func TestDecodeCollection_Malformed(t *testing.T) {
	_, err := DecodeCollection([]byte("[{"))
	assert.Error(t, err)
}
