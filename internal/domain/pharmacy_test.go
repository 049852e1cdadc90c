package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPharmacy(t *testing.T) {
	list := []PharmacyInfo{
		{ID: 1, Name: "AIA APTEEK"},
		{ID: 7, Name: "Südameapteek"},
	}

	found := FindPharmacy(list, 7)
	require.NotNil(t, found)
	assert.Equal(t, "Südameapteek", found.Name)

	// копия, а не указатель в чужой срез
	found.Name = "changed"
	assert.Equal(t, "Südameapteek", list[1].Name)

	assert.Nil(t, FindPharmacy(list, 99))
	assert.Nil(t, FindPharmacy(nil, 1))
}
