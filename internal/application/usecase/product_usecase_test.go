package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmaneb0100/ecommerce-product-api/internal/application/dto"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/usecase"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
	"github.com/othmaneb0100/ecommerce-product-api/internal/infrastructure/memory"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *usecase.CategoryUseCase) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewProductUseCase(store.Products(), store.Categories(), store),
		usecase.NewCategoryUseCase(store.Categories())
}

func crearCategoria(t *testing.T, categoryUC *usecase.CategoryUseCase, name string) string {
	t.Helper()
	cat, err := categoryUC.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return cat.ID
}

func TestProductUseCase_CreateIncrementaElConteo(t *testing.T) {
	productUC, categoryUC := newProductUC(t)
	catID := crearCategoria(t, categoryUC, "Electrónica")

	antes, err := productUC.List(repository.ProductFilter{Limit: 20})
	require.NoError(t, err)

	created, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name:          "Teclado",
		Description:   "mecánico",
		Price:         dec(t, "9.99"),
		CategoryID:    catID,
		StockQuantity: 10,
		ImageURL:      "http://example.com/image.jpg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, testUserID, created.UserID, "el dueño es el actor autenticado que crea")
	assert.Equal(t, "Electrónica", created.CategoryName)

	despues, err := productUC.List(repository.ProductFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, antes.Page.Total+1, despues.Page.Total, "el conteo total sube exactamente en uno")

	// El nuevo registro es recuperable por su ID asignado.
	got, err := productUC.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Teclado", got.Name)
	assert.True(t, got.Price.Equal(dec(t, "9.99")))
}

func TestProductUseCase_PrecioInvalido(t *testing.T) {
	productUC, categoryUC := newProductUC(t)
	catID := crearCategoria(t, categoryUC, "Hogar")

	// Más de 2 decimales.
	_, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "A", Price: dec(t, "9.999"), CategoryID: catID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	// Negativo.
	_, err = productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "B", Price: dec(t, "-1.00"), CategoryID: catID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	// Entero sin decimales es válido.
	_, err = productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "C", Price: dec(t, "5"), CategoryID: catID,
	})
	assert.NoError(t, err)
}

func TestProductUseCase_CategoriaDebeExistir(t *testing.T) {
	productUC, _ := newProductUC(t)
	_, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "Sin categoría", Price: dec(t, "1.00"), CategoryID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductUseCase_UpdateParcialPreservaCamposOmitidos(t *testing.T) {
	productUC, categoryUC := newProductUC(t)
	catID := crearCategoria(t, categoryUC, "Ropa")

	created, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name:          "Camisa",
		Description:   "de algodón",
		Price:         dec(t, "9.99"),
		CategoryID:    catID,
		StockQuantity: 10,
	})
	require.NoError(t, err)

	nuevoNombre := "Camisa actualizada"
	nuevoPrecio := dec(t, "19.99")
	nuevoStock := 20
	updated, err := productUC.Update(created.ID, dto.UpdateProductRequest{
		Name:          &nuevoNombre,
		Price:         &nuevoPrecio,
		StockQuantity: &nuevoStock,
	})
	require.NoError(t, err)

	assert.Equal(t, "Camisa actualizada", updated.Name)
	assert.True(t, updated.Price.Equal(dec(t, "19.99")))
	assert.Equal(t, 20, updated.StockQuantity)
	// Los campos no enviados conservan su valor anterior.
	assert.Equal(t, "de algodón", updated.Description)
	assert.Equal(t, catID, updated.CategoryID)
	assert.Equal(t, testUserID, updated.UserID)
}

func TestProductUseCase_UpdateConCategoriaInexistente(t *testing.T) {
	productUC, categoryUC := newProductUC(t)
	catID := crearCategoria(t, categoryUC, "Ropa")
	created, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "Camisa", Price: dec(t, "9.99"), CategoryID: catID,
	})
	require.NoError(t, err)

	otra := "no-existe"
	_, err = productUC.Update(created.ID, dto.UpdateProductRequest{CategoryID: &otra})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	// El producto no cambió de categoría.
	got, err := productUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, catID, got.CategoryID)
}

func TestProductUseCase_UpdateDeInexistenteDevuelveNil(t *testing.T) {
	productUC, _ := newProductUC(t)
	out, err := productUC.Update("no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUseCase_DeleteReduceElConteo(t *testing.T) {
	productUC, categoryUC := newProductUC(t)
	catID := crearCategoria(t, categoryUC, "Ropa")
	created, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "Camisa", Price: dec(t, "9.99"), CategoryID: catID,
	})
	require.NoError(t, err)

	require.NoError(t, productUC.Delete(created.ID))

	out, err := productUC.List(repository.ProductFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Page.Total)

	// El segundo delete del mismo ID es un not found.
	assert.ErrorIs(t, productUC.Delete(created.ID), domain.ErrNotFound)
}

func TestProductUseCase_TotalIndependienteDeLaPagina(t *testing.T) {
	productUC, categoryUC := newProductUC(t)
	catID := crearCategoria(t, categoryUC, "Ropa")
	for i := 0; i < 5; i++ {
		_, err := productUC.Create(testUserID, dto.CreateProductRequest{
			Name: "P", Price: dec(t, "1.00"), CategoryID: catID,
		})
		require.NoError(t, err)
	}

	out, err := productUC.List(repository.ProductFilter{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "la página respeta el limit")
	assert.Equal(t, 5, out.Page.Total, "el total cuenta todas las coincidencias, no la página")
}
