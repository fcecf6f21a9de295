package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"
)

// ErrMenuPriceIsTooHigh is returned when the requested menu price exceeds the
// summed price of its constituent products.
var ErrMenuPriceIsTooHigh = errs.NewValueIsInvalidError(
	"menu price must not exceed the total price of its products",
)

// CreateMenuCommandHandler assembles a menu from stored products.
//
// The handler resolves every referenced product and the menu group, verifies
// the pricing invariant with the price validator, and constructs the menu
// with its lines in one transaction. No partial menu is ever observable.
type CreateMenuCommandHandler struct {
	uowFactory     MenuUoWFactory
	priceValidator services.PriceValidator
}

// NewCreateMenuCommandHandler creates a handler for menu assembly.
func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory:     uowFactory,
		priceValidator: services.NewPriceValidator(),
	}
}

// Handle processes the menu creation command.
//
// Validation order follows the failure taxonomy: structural checks happened
// in the command constructor, then product resolution, then the pricing
// invariant, then menu group resolution. The first violation aborts the
// transaction with no side effects.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	linePrices, err := h.resolveLinePrices(ctx, uow, cmd.Lines())
	if err != nil {
		return err
	}

	lineTotal, err := h.priceValidator.Sum(linePrices)
	if err != nil {
		return err
	}

	sufficient, err := h.priceValidator.IsSufficient(cmd.Price(), lineTotal)
	if err != nil {
		return err
	}
	if !sufficient {
		return ErrMenuPriceIsTooHigh
	}

	menuGroup, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID())
	if err != nil {
		return err
	}

	menuProducts, err := buildMenuProducts(cmd.Lines())
	if err != nil {
		return err
	}

	newMenu, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), menuGroup.ID(), menuProducts)
	if err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, newMenu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveLinePrices loads every referenced product and returns the price of
// each line (product price times quantity). An unresolvable product aborts
// with the repository's not-found error.
func (h *CreateMenuCommandHandler) resolveLinePrices(
	ctx context.Context,
	uow MenuUoW,
	lines []MenuProductLine,
) ([]kernel.Price, error) {
	productRepo := uow.ProductRepository()

	linePrices := make([]kernel.Price, 0, len(lines))
	for _, line := range lines {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		linePrice, err := p.Price().MultiplyBy(line.Quantity)
		if err != nil {
			return nil, err
		}
		linePrices = append(linePrices, linePrice)
	}

	return linePrices, nil
}

func buildMenuProducts(lines []MenuProductLine) ([]menu.MenuProduct, error) {
	menuProducts := make([]menu.MenuProduct, 0, len(lines))
	for _, line := range lines {
		mp, err := menu.NewMenuProduct(line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		menuProducts = append(menuProducts, mp)
	}
	return menuProducts, nil
}
