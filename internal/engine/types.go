package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// All money values are whole naira unless the field is USD-tagged.
// USD cash flows are converted at the prevailing exchange rate.

type Currency string

const (
	NGN Currency = "NGN"
	USD Currency = "USD"
)

type AssetCategory string

const (
	Business   AssetCategory = "Business"
	RealEstate AssetCategory = "Real Estate"
	PaperAsset AssetCategory = "Paper Asset"
	SideHustle AssetCategory = "Side Hustle"
	Equipment  AssetCategory = "Equipment"
)

type LifestyleTier string

const (
	TierLow    LifestyleTier = "Low"
	TierMiddle LifestyleTier = "Middle"
	TierHigh   LifestyleTier = "High"
)

type LiabilityKind string

const (
	KindLoan             LiabilityKind = "Loan"
	KindExpense          LiabilityKind = "Expense"
	KindFamilyObligation LiabilityKind = "Family Obligation"
)

// LiabilityOrigin replaces the old string-prefix convention on liability IDs.
type LiabilityOrigin string

const (
	OriginArchetype LiabilityOrigin = "archetype"
	OriginBank      LiabilityOrigin = "bank"
	OriginShark     LiabilityOrigin = "shark"
	OriginEvent     LiabilityOrigin = "event"
)

type Phase string

const (
	PhaseSetup      Phase = "SETUP"
	PhasePlaying    Phase = "PLAYING"
	PhaseEventModal Phase = "EVENT_MODAL"
	PhaseInsolvency Phase = "INSOLVENCY"
	PhaseGameOver   Phase = "GAME_OVER"
	PhaseVictory    Phase = "VICTORY"
)

// Expenses is the fixed category map used for both base and derived figures.
type Expenses struct {
	Tax       int64 `json:"tax"`
	Rent      int64 `json:"rent"`
	Food      int64 `json:"food"`
	Transport int64 `json:"transport"`
	Other     int64 `json:"other"`
}

func (e Expenses) Sum() int64 {
	return e.Tax + e.Rent + e.Food + e.Transport + e.Other
}

type ExpenseCategory string

const (
	CatTax       ExpenseCategory = "tax"
	CatRent      ExpenseCategory = "rent"
	CatFood      ExpenseCategory = "food"
	CatTransport ExpenseCategory = "transport"
	CatOther     ExpenseCategory = "other"
)

type Asset struct {
	ID        string        `json:"id"`
	CatalogID string        `json:"catalog_id,omitempty"`
	Name      string        `json:"name"`
	Category  AssetCategory `json:"category"`
	Cost      int64         `json:"cost"`
	CashFlow  int64         `json:"cash_flow"`
	Currency  Currency      `json:"currency"`
	// ResaleValue of 0 means the asset resells at Cost.
	ResaleValue int64 `json:"resale_value,omitempty"`

	Level           int   `json:"level"`
	MaxLevel        int   `json:"max_level"`
	UpgradeCost     int64 `json:"upgrade_cost,omitempty"`
	UpgradeFlowGain int64 `json:"upgrade_flow_gain,omitempty"`
}

// SaleValue is the full (non-distress) resale price.
func (a Asset) SaleValue() int64 {
	if a.ResaleValue > 0 {
		return a.ResaleValue
	}
	return a.Cost
}

type Liability struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Kind           LiabilityKind   `json:"kind"`
	Origin         LiabilityOrigin `json:"origin"`
	TotalOwed      int64           `json:"total_owed"`
	MonthlyPayment int64           `json:"monthly_payment"`
	// TermRemaining of 0 means the liability does not self-amortize.
	TermRemaining int `json:"term_remaining,omitempty"`
}

type DreamItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cost     int64  `json:"cost"`
	GigBonus int64  `json:"gig_bonus"`
}

type Player struct {
	Name          string        `json:"name"`
	Profession    string        `json:"profession"`
	Salary        int64         `json:"salary"`
	Cash          int64         `json:"cash"`
	SocialCapital int64         `json:"social_capital"`
	Health        int           `json:"health"`
	Mood          int           `json:"mood"`
	Assets        []Asset       `json:"assets"`
	Liabilities   []Liability   `json:"liabilities"`
	BaseExpenses  Expenses      `json:"base_expenses"`
	Expenses      Expenses      `json:"expenses"`
	Lifestyle     LifestyleTier `json:"lifestyle"`
	Dream         DreamItem     `json:"dream"`
	DreamOwned    bool          `json:"dream_owned"`
	GigsThisMonth int           `json:"gigs_this_month"`
	Skills        []string      `json:"skills"`
}

func (p Player) HasSkill(id string) bool {
	for _, s := range p.Skills {
		if s == id {
			return true
		}
	}
	return false
}

func (p Player) ownsCategory(cat AssetCategory) bool {
	for _, a := range p.Assets {
		if a.Category == cat {
			return true
		}
	}
	return false
}

func (p Player) ownsCatalogItem(catalogID string) bool {
	for _, a := range p.Assets {
		if a.CatalogID == catalogID {
			return true
		}
	}
	return false
}

type NetWorthPoint struct {
	Month int   `json:"month"`
	Value int64 `json:"value"`
}

type GameState struct {
	Month        int             `json:"month"`
	Phase        Phase           `json:"phase"`
	Log          []string        `json:"log"` // most recent first
	ExchangeRate int64           `json:"exchange_rate"`
	Flags        map[string]bool `json:"flags"`
	History      []NetWorthPoint `json:"net_worth_history"`
	// Deficit is only meaningful while Phase is INSOLVENCY.
	Deficit int64 `json:"deficit,omitempty"`
}

// Game is a full snapshot. Engine operations take a Game by value and
// return a new one; callers own the returned snapshot exclusively.
type Game struct {
	Player Player    `json:"player"`
	State  GameState `json:"state"`
}

// --- static catalog entries (read-only configuration) ---

type EventResult struct {
	Message         string          `json:"message"`
	CashChange      int64           `json:"cash_change,omitempty"`
	SocialChange    int64           `json:"social_change,omitempty"`
	HealthChange    int             `json:"health_change,omitempty"`
	MoodChange      int             `json:"mood_change,omitempty"`
	Asset           *Asset          `json:"asset,omitempty"`
	AssetLostID     string          `json:"asset_lost_id,omitempty"` // catalog id
	ExpenseChange   int64           `json:"expense_change,omitempty"`
	ExpenseCategory ExpenseCategory `json:"expense_category,omitempty"`
	SalaryChange    int64           `json:"salary_change,omitempty"`
	FlagsSet        []string        `json:"flags_set,omitempty"`
}

type EventChoice struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Cost        int64  `json:"cost,omitempty"`

	ReqCash          int64         `json:"req_cash,omitempty"`
	ReqSocial        int64         `json:"req_social,omitempty"`
	ReqAssetCategory AssetCategory `json:"req_asset_category,omitempty"`
	ReqFlag          string        `json:"req_flag,omitempty"`

	// SuccessChance of 0 means the choice always succeeds.
	SuccessChance float64      `json:"success_chance,omitempty"`
	OnSuccess     EventResult  `json:"on_success"`
	OnFailure     *EventResult `json:"on_failure,omitempty"`
}

type EventType string

const (
	EventOpportunity EventType = "Opportunity"
	EventShock       EventType = "Shock"
	EventMarket      EventType = "Market"
	EventSocial      EventType = "Social"
	EventEconomic    EventType = "Economic"
	EventCareer      EventType = "Career"
)

type GameEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        EventType     `json:"type"`
	Choices     []EventChoice `json:"choices"`

	Weight           int           `json:"weight,omitempty"` // default 1
	RequiresFlag     string        `json:"requires_flag,omitempty"`
	RequiresCategory AssetCategory `json:"requires_category,omitempty"`
	RequiresCatalog  string        `json:"requires_catalog,omitempty"`
	MinSocial        int64         `json:"min_social,omitempty"`
	MaxMood          int           `json:"max_mood,omitempty"` // 0 = no gate
}

func (e GameEvent) Choice(id string) (EventChoice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return EventChoice{}, false
}

type MarketItem struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Cost             int64         `json:"cost"`
	CashFlow         int64         `json:"cash_flow"`
	Currency         Currency      `json:"currency,omitempty"` // empty means NGN
	Category         AssetCategory `json:"category"`
	Tier             LifestyleTier `json:"tier"`
	Risk             float64       `json:"risk"` // failure chance, 0..1
	RiskDescription  string        `json:"risk_description"`
	OnFailureMessage string        `json:"on_failure_message"`
	RequiresSkill    string        `json:"requires_skill,omitempty"`

	MaxLevel        int   `json:"max_level"`
	UpgradeCost     int64 `json:"upgrade_cost"`
	UpgradeFlowGain int64 `json:"upgrade_flow_gain"`
}

type Archetype struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Profession     string      `json:"profession"`
	Salary         int64       `json:"salary"`
	Savings        int64       `json:"savings"`
	Expenses       Expenses    `json:"expenses"`
	Liabilities    []Liability `json:"liabilities"`
	Difficulty     string      `json:"difficulty"`
	StartingSocial int64       `json:"starting_social"`
}

// Catalog bundles the read-only configuration the engine consumes.
type Catalog struct {
	Archetypes []Archetype
	Items      []MarketItem
	Events     []GameEvent
	Dreams     []DreamItem
	Skills     []Skill
}

func (c Catalog) Archetype(id string) (Archetype, bool) {
	for _, a := range c.Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}

func (c Catalog) Item(id string) (MarketItem, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return MarketItem{}, false
}

func (c Catalog) Dream(id string) (DreamItem, bool) {
	for _, d := range c.Dreams {
		if d.ID == id {
			return d, true
		}
	}
	return DreamItem{}, false
}

func (c Catalog) Skill(id string) (Skill, bool) {
	for _, s := range c.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

func (c Catalog) Event(id string) (GameEvent, bool) {
	for _, e := range c.Events {
		if e.ID == id {
			return e, true
		}
	}
	return GameEvent{}, false
}

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrUnknownDream     = errors.New("unknown dream item")
	ErrUnknownItem      = errors.New("unknown market item")
	ErrUnknownChoice    = errors.New("unknown event choice")
	ErrUnknownStrategy  = errors.New("unknown insolvency strategy")
	ErrWrongPhase       = errors.New("action not valid in current phase")
)

func instanceID(catalogID string) string {
	return fmt.Sprintf("%s_%s", catalogID, uuid.NewString())
}
