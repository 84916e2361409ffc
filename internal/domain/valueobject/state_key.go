package valueobject

// StateSlice names one independently persisted document.
type StateSlice string

const (
	SliceTransactions StateSlice = "transactions"
	SliceUser         StateSlice = "user"
	SliceMissions     StateSlice = "missions"
	SliceCommunity    StateSlice = "community"
	SliceProgress     StateSlice = "progress"
	SliceSettings     StateSlice = "settings"

	SliceAuth    StateSlice = "auth"
	SliceProfile StateSlice = "profile"
)

// EngineSlices are the slices owned by the progression engine, in load order.
var EngineSlices = []StateSlice{
	SliceTransactions,
	SliceUser,
	SliceMissions,
	SliceCommunity,
	SliceProgress,
	SliceSettings,
}

// DefaultNamespace scopes keys so unrelated data in the same storage is left alone.
const DefaultNamespace Namespace = "contacomigo_"

// Namespace is the prefix prepended to every slice name.
type Namespace string

// Key returns the storage key of a slice.
func (n Namespace) Key(s StateSlice) string {
	return string(n) + string(s)
}
