package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/domain/model"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []model.LineItem {
	return []model.LineItem{
		{ID: 1, Name: "Pickle", Price: 120, Quantity: 2, Weight: "N/A"},
		{ID: 2, Name: "Mango Pickle", Price: 250, Quantity: 1, Weight: "250g"},
	}
}

func TestItemCodec_RoundTrip(t *testing.T) {
	items := sampleItems()

	encoded, err := usecase.EncodeItems(items)
	assert.NoError(t, err)

	decoded, err := usecase.DecodeItems(encoded)
	assert.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestEncodeItems_StringInputIsValidatedAndReencoded(t *testing.T) {
	raw, _ := json.Marshal(sampleItems())

	encoded, err := usecase.EncodeItems(string(raw))
	assert.NoError(t, err)

	//保存形は必ず1層のJSON配列
	var arr []model.LineItem
	assert.NoError(t, json.Unmarshal([]byte(encoded), &arr))
	assert.Len(t, arr, 2)
}

func TestEncodeItems_RejectsDoubleEncodedString(t *testing.T) {
	raw, _ := json.Marshal(sampleItems())
	double, _ := json.Marshal(string(raw))

	_, err := usecase.EncodeItems(string(double))
	assert.ErrorIs(t, err, usecase.ErrMalformedItems)
}

func TestEncodeItems_AcceptsBoundJSONValue(t *testing.T) {
	//echoのBindから来る形（[]any + map[string]any）
	v := []any{
		map[string]any{"id": float64(1), "name": "Pickle", "price": float64(120), "quantity": float64(2)},
	}

	encoded, err := usecase.EncodeItems(v)
	assert.NoError(t, err)

	decoded, err := usecase.DecodeItems(encoded)
	assert.NoError(t, err)
	assert.Equal(t, []model.LineItem{
		{ID: 1, Name: "Pickle", Price: 120, Quantity: 2, Weight: "N/A"},
	}, decoded)
}

func TestDecodeItems_DoubleEncodedRowDecodesSame(t *testing.T) {
	single, _ := json.Marshal(sampleItems())
	double, _ := json.Marshal(string(single))

	fromSingle, err := usecase.DecodeItems(string(single))
	assert.NoError(t, err)

	fromDouble, err := usecase.DecodeItems(string(double))
	assert.NoError(t, err)

	assert.Equal(t, fromSingle, fromDouble)
}

func TestDecodeItems_SubstitutesWeight(t *testing.T) {
	raw := `[{"id":1,"name":"Pickle","price":120,"quantity":2}]`

	decoded, err := usecase.DecodeItems(raw)
	assert.NoError(t, err)
	assert.Equal(t, "N/A", decoded[0].Weight)
}

func TestDecodeItems_MalformedReturnsEmpty(t *testing.T) {
	cases := []string{
		"not json at all",
		"{}",
		"123",
		`"just a plain string"`,
	}

	for _, raw := range cases {
		decoded, err := usecase.DecodeItems(raw)
		assert.ErrorIs(t, err, usecase.ErrMalformedItems, raw)
		assert.Empty(t, decoded, raw)
		assert.NotNil(t, decoded, raw)
	}
}

func TestDecodeItems_UnwrapIsBounded(t *testing.T) {
	//三重エンコードは追いかけない（上限2回で打ち切り）
	single, _ := json.Marshal(sampleItems())
	double, _ := json.Marshal(string(single))
	triple, _ := json.Marshal(string(double))

	decoded, err := usecase.DecodeItems(string(triple))
	assert.ErrorIs(t, err, usecase.ErrMalformedItems)
	assert.Empty(t, decoded)
}
