package engine

const marketFailMoodHit = 10

// canRepeatPurchase enforces vertical-before-horizontal scaling: a second
// instance of a catalog item is only allowed once every existing instance
// has reached max level.
func canRepeatPurchase(p Player, catalogID string) bool {
	for _, a := range p.Assets {
		if a.CatalogID == catalogID && a.Level < a.MaxLevel {
			return false
		}
	}
	return true
}

func assetFromItem(item MarketItem) Asset {
	currency := item.Currency
	if currency == "" {
		currency = NGN
	}
	return Asset{
		ID:              instanceID(item.ID),
		CatalogID:       item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Cost:            item.Cost,
		CashFlow:        item.CashFlow,
		Currency:        currency,
		Level:           1,
		MaxLevel:        item.MaxLevel,
		UpgradeCost:     item.UpgradeCost,
		UpgradeFlowGain: item.UpgradeFlowGain,
	}
}

// PurchaseMarketItem validates affordability, rolls the item's risk, and
// on success appends a level-1 asset. A financed purchase that fails still
// leaves the debt behind.
func (e *Engine) PurchaseMarketItem(g Game, itemID string, method PayMethod) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	item, ok := e.catalog.Item(itemID)
	if !ok {
		return g, ErrUnknownItem
	}

	if item.RequiresSkill != "" && !g.Player.HasSkill(item.RequiresSkill) {
		return reject(g, "You need the right skill before running %s.", item.Name), nil
	}
	if !canRepeatPurchase(g.Player, item.ID) {
		return reject(g, "Max out your existing %s before opening another.", item.Name), nil
	}
	if method == PayBank {
		if !bankHeadroomFor(g.Player, g.State.Month, item.Cost) {
			return reject(g, "Financing declined! Credit limit exceeded. Build social capital or wait."), nil
		}
	} else if g.Player.Cash < item.Cost {
		return reject(g, "Insufficient cash to buy %s.", item.Name), nil
	}

	g = clone(g)
	if method == PayBank {
		term := financeTermMonths(item.Tier)
		g.Player.Liabilities = append(g.Player.Liabilities, newBankLiability("Loan: "+item.Name, item.Cost, term))
		g = logf(g, "MARKET: financed %s via bank over %d months.", item.Name, term)
	} else {
		g.Player.Cash -= item.Cost
		g = logf(g, "MARKET: bought %s with cash.", item.Name)
	}

	if roll := e.rng.Float64(); roll > item.Risk {
		g.Player.Assets = append(g.Player.Assets, assetFromItem(item))
	} else {
		// Risk bites. If financed, the money is still owed.
		g.Player.Mood = clampStat(g.Player.Mood - marketFailMoodHit)
		g = logf(g, "MARKET FAILED: %s — %s", item.Name, item.OnFailureMessage)
	}

	g = e.checkVictory(g)
	return g, nil
}

// UpgradeAsset spends cash to raise an asset one level and widen its
// monthly flow.
func (e *Engine) UpgradeAsset(g Game, assetID string) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	idx := -1
	for i, a := range g.Player.Assets {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return reject(g, "You do not own that asset."), nil
	}
	a := g.Player.Assets[idx]
	if a.MaxLevel == 0 || a.Level >= a.MaxLevel {
		return reject(g, "%s cannot be upgraded any further.", a.Name), nil
	}
	if g.Player.Cash < a.UpgradeCost {
		return reject(g, "Insufficient cash to upgrade %s.", a.Name), nil
	}

	g = clone(g)
	g.Player.Cash -= a.UpgradeCost
	g.Player.Assets[idx].Level++
	g.Player.Assets[idx].CashFlow += a.UpgradeFlowGain
	g = logf(g, "UPGRADE: %s is now level %d (+₦%d/mo).", a.Name, a.Level+1, a.UpgradeFlowGain)
	return e.checkVictory(g), nil
}

// SellAsset credits the full resale value. Distress sales, with their
// haircut, live in the insolvency resolver.
func (e *Engine) SellAsset(g Game, assetID string) (Game, error) {
	if g.State.Phase != PhasePlaying {
		return g, ErrWrongPhase
	}
	idx := -1
	for i, a := range g.Player.Assets {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return reject(g, "You do not own that asset."), nil
	}

	g = clone(g)
	sold := g.Player.Assets[idx]
	price := sold.SaleValue()
	g.Player.Assets = append(g.Player.Assets[:idx], g.Player.Assets[idx+1:]...)
	g.Player.Cash += price
	g = logf(g, "SOLD: %s for ₦%d.", sold.Name, price)
	return e.checkVictory(g), nil
}
