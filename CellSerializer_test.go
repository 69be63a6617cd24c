package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsheet/contracts"
)

func TestCellBinarySerializer_Marshal(t *testing.T) {
	serializer := &CellBinarySerializer{}
	serialized := serializer.Marshal("A1", "=B1+1", contracts.FormatCurrency)
	assert.NotNil(t, serialized)
	assert.Greater(t, len(serialized), 8)
}

func TestCellBinarySerializer_Unmarshal(t *testing.T) {
	serializer := &CellBinarySerializer{}

	t.Run("valid_data", func(t *testing.T) {
		assertMarshalAndUnmarshal := func(expectedAddress contracts.Address, expectedValue string, expectedFormat contracts.FormatTag) {
			serialized := serializer.Marshal(expectedAddress, expectedValue, expectedFormat)
			actualAddress, actualValue, actualFormat, err := serializer.Unmarshal(serialized)

			assert.NoError(t, err)
			assert.Equal(t, expectedAddress, actualAddress)
			assert.Equal(t, expectedValue, actualValue)
			assert.Equal(t, expectedFormat, actualFormat)
		}

		assertMarshalAndUnmarshal("A1", "value1", contracts.FormatGeneral)
		assertMarshalAndUnmarshal("ZZ702", "=SUM(A1:C3)/AVERAGE(B1:B9)", contracts.FormatPercentage)
		assertMarshalAndUnmarshal("B2", "", contracts.FormatThousands)
	})

	t.Run("empty_data", func(t *testing.T) {
		address, value, format, err := serializer.Unmarshal([]byte{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, contracts.Address(""), address)
		assert.Equal(t, "", value)
		assert.Equal(t, contracts.FormatGeneral, format)
	})

	t.Run("invalid_data", func(t *testing.T) {
		address, value, _, err := serializer.Unmarshal([]byte{' ', 'q', 'r'})

		assert.Error(t, err)
		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, contracts.Address(""), address)
		assert.Equal(t, "", value)
	})
}
