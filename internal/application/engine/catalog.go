package engine

import (
	"github.com/contacomigo/backend/internal/domain/entity"
)

// XP rewards.
const (
	XPRegisterTransaction = 10
	XPDailyMission        = 25
	XPPathMission         = 100
)

// FeedLimit is the number of posts kept in the community feed.
const FeedLimit = 20

// DefaultUserName is used until the profile is set up.
const DefaultUserName = "Usuário"

// LevelCurve returns the XP needed to leave the given level.
func LevelCurve(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 + 50*(level-1)
}

// Badge conditions.
const (
	ConditionFirstTransaction = "transactions_1"
	ConditionStreak7          = "streak_7"
	ConditionBalance1000      = "balance_1000"
	ConditionTransactions50   = "transactions_50"
	ConditionMissions10       = "missions_10"
	ConditionLevel20          = "level_20"
	ConditionConsciousDays30  = "conscious_days_30"
)

// BadgeCatalog returns the canonical badges, all locked.
func BadgeCatalog() []entity.Badge {
	return []entity.Badge{
		{ID: "first_step", Name: "Primeiro Passo", Icon: "👣", Description: "Registrou a primeira transação.", Condition: ConditionFirstTransaction},
		{ID: "7_days", Name: "7 Dias", Icon: "🔥", Description: "Registrou gastos por uma semana inteira.", Condition: ConditionStreak7},
		{ID: "poupador", Name: "Poupador", Icon: "💰", Description: "Primeira reserva de emergência criada.", Condition: ConditionBalance1000},
		{ID: "registrador", Name: "Registrador", Icon: "📝", Description: "Registrou 50 transações.", Condition: ConditionTransactions50},
		{ID: "focado", Name: "Focado", Icon: "🎯", Description: "Completou 10 missões.", Condition: ConditionMissions10},
		{ID: "mestre", Name: "Mestre", Icon: "💎", Description: "Chegue ao nível 20.", Condition: ConditionLevel20},
		{ID: "consistente", Name: "Consistente", Icon: "📅", Description: "Foi consciente por 30 dias.", Condition: ConditionConsciousDays30},
	}
}

// Daily missions completed automatically by the ledger.
const (
	MissionRegisterExpense = "d1"
	MissionRegisterIncome  = "d2"
)

// MissionCatalog returns the canonical missions in their initial state.
// Path missions are listed in chain order.
func MissionCatalog() []entity.Mission {
	return []entity.Mission{
		{ID: MissionRegisterExpense, Title: "Registrar gasto", Description: "Adicione uma despesa hoje", XP: XPDailyMission, Status: entity.MissionStatusAvailable, Type: entity.MissionTypeDaily},
		{ID: MissionRegisterIncome, Title: "Registrar ganho", Description: "Adicione uma receita hoje", XP: XPDailyMission, Status: entity.MissionStatusAvailable, Type: entity.MissionTypeDaily},
		{ID: "d3", Title: "Revisar dia", Description: "Confirme suas categorias do dia", XP: XPDailyMission, Status: entity.MissionStatusAvailable, Type: entity.MissionTypeDaily},
		{ID: "p1", Title: "Fundamentos", Description: "Entenda custos fixos e variáveis", XP: XPPathMission, Status: entity.MissionStatusAvailable, Type: entity.MissionTypePath},
		{ID: "p2", Title: "Controle de Gastos", Description: "Defina limites semanais", XP: XPPathMission, Status: entity.MissionStatusLocked, Type: entity.MissionTypePath},
		{ID: "p3", Title: "Reserva Segura", Description: "Crie seu primeiro objetivo", XP: XPPathMission, Status: entity.MissionStatusLocked, Type: entity.MissionTypePath},
		{ID: "p4", Title: "Investidor Iniciante", Description: "Conheça os tipos de investimento", XP: XPPathMission, Status: entity.MissionStatusLocked, Type: entity.MissionTypePath},
		{ID: "p5", Title: "Liberdade Financeira", Description: "Monte seu plano de longo prazo", XP: XPPathMission, Status: entity.MissionStatusLocked, Type: entity.MissionTypePath},
	}
}

// Category is an entry of the transaction category catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var expenseCategories = []Category{
	{ID: "alimentacao", Name: "Alimentação", Icon: "🍔"},
	{ID: "transporte", Name: "Transporte", Icon: "🚗"},
	{ID: "moradia", Name: "Moradia", Icon: "🏠"},
	{ID: "lazer", Name: "Lazer", Icon: "🎮"},
	{ID: "saude", Name: "Saúde", Icon: "💊"},
	{ID: "educacao", Name: "Educação", Icon: "📚"},
	{ID: "compras", Name: "Compras", Icon: "🛍️"},
	{ID: entity.DefaultCategory, Name: "Outros", Icon: "📦"},
}

var incomeCategories = []Category{
	{ID: "salario", Name: "Salário", Icon: "💼"},
	{ID: "freelance", Name: "Freelance", Icon: "💻"},
	{ID: "investimentos", Name: "Investimentos", Icon: "📈"},
	{ID: "presente", Name: "Presente", Icon: "🎁"},
	{ID: entity.DefaultCategory, Name: "Outros", Icon: "📦"},
}

// Categories returns the catalog for a transaction type.
func Categories(t entity.TransactionType) []Category {
	src := expenseCategories
	if t == entity.TransactionTypeIncome {
		src = incomeCategories
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

func isKnownCategory(t entity.TransactionType, id string) bool {
	for _, c := range Categories(t) {
		if c.ID == id {
			return true
		}
	}
	return false
}

// AvatarCatalog returns the avatars offered during profile setup.
func AvatarCatalog() []entity.Avatar {
	return []entity.Avatar{
		{ID: "avatar1", Name: "Explorador", Seed: "felix", Style: "adventurer"},
		{ID: "avatar2", Name: "Guerreira", Seed: "luna", Style: "adventurer"},
		{ID: "avatar3", Name: "Sábio", Seed: "oliver", Style: "adventurer"},
		{ID: "avatar4", Name: "Mística", Seed: "zara", Style: "adventurer"},
		{ID: "avatar5", Name: "Herói", Seed: "max", Style: "adventurer"},
		{ID: "avatar6", Name: "Fada", Seed: "pixie", Style: "adventurer"},
		{ID: "avatar7", Name: "Ninja", Seed: "shadow", Style: "adventurer"},
		{ID: "avatar8", Name: "Mago", Seed: "merlin", Style: "adventurer"},
		{ID: "avatar9", Name: "Princesa", Seed: "aurora", Style: "adventurer"},
		{ID: "avatar10", Name: "Robô", Seed: "cyber", Style: "bottts"},
	}
}

// FindAvatar looks up an avatar by id.
func FindAvatar(id string) (entity.Avatar, bool) {
	for _, a := range AvatarCatalog() {
		if a.ID == id {
			return a, true
		}
	}
	return entity.Avatar{}, false
}
