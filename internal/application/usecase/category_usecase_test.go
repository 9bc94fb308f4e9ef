package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmaneb0100/ecommerce-product-api/internal/application/dto"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/usecase"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
	"github.com/othmaneb0100/ecommerce-product-api/internal/infrastructure/memory"
)

func TestCategoryUseCase_CRUD(t *testing.T) {
	store := memory.NewStore()
	categoryUC := usecase.NewCategoryUseCase(store.Categories())

	created, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := categoryUC.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Electrónica", got.Name)

	nuevo := "Electrónica y audio"
	updated, err := categoryUC.Update(created.ID, dto.UpdateCategoryRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, nuevo, updated.Name)

	list, err := categoryUC.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	found, err := categoryUC.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	list, err = categoryUC.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	found, err = categoryUC.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, found, "el segundo delete no encuentra la categoría")
}

// Eliminar una categoría arrastra sus productos (cascada referencial).
func TestCategoryUseCase_DeleteEnCascadaConProductos(t *testing.T) {
	store := memory.NewStore()
	categoryUC := usecase.NewCategoryUseCase(store.Categories())
	productUC := usecase.NewProductUseCase(store.Products(), store.Categories(), store)

	cat, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Ropa"})
	require.NoError(t, err)
	otra, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Calzado"})
	require.NoError(t, err)

	_, err = productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "Camisa", Price: dec(t, "9.99"), CategoryID: cat.ID,
	})
	require.NoError(t, err)
	sobreviviente, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "Botas", Price: dec(t, "49.99"), CategoryID: otra.ID,
	})
	require.NoError(t, err)

	_, err = categoryUC.Delete(cat.ID)
	require.NoError(t, err)

	out, err := productUC.List(repository.ProductFilter{Limit: 20})
	require.NoError(t, err)
	require.Equal(t, 1, out.Page.Total, "solo caen los productos de la categoría eliminada")
	assert.Equal(t, sobreviviente.ID, out.Items[0].ID)
}
