package memory

import (
	"sort"

	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
)

type productRepo struct {
	s *Store
}

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *product
	r.s.products[cp.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.withCategoryName(p), nil
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return nil
	}
	cp := *product
	r.s.products[cp.ID] = &cp
	return nil
}

// List filtra con ProductFilter.Matches, ordena con Compare y pagina.
// El total se calcula antes del corte de página.
func (r *productRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := r.withCategoryName(p)
		if filter.Matches(cp) {
			matched = append(matched, cp)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return filter.Compare(matched[i], matched[j]) < 0 })

	total := len(matched)
	offset := filter.Offset
	if offset > total {
		offset = total
	}
	end := total
	if filter.Limit > 0 && offset+filter.Limit < end {
		end = offset + filter.Limit
	}
	return matched[offset:end], total, nil
}

func (r *productRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// withCategoryName devuelve una copia con CategoryName resuelto, como hace el
// JOIN en el adaptador postgres.
func (r *productRepo) withCategoryName(p *entity.Product) *entity.Product {
	cp := *p
	if c, ok := r.s.categories[cp.CategoryID]; ok {
		cp.CategoryName = c.Name
	}
	return &cp
}
