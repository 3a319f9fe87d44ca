package version

// Feature gates: the compiler release at which a piece of surface syntax
// became available. Writer rules compare their target against these with
// Version.AtLeast; a target below the gate either falls back to the older
// spelling or refuses the write.
var (
	// EmitStatement gates `emit Event(...)`; before it, event invocation is
	// spelled as a plain call statement.
	EmitStatement = MustParse("0.4.21")

	// ViewPureKeywords gates the `view` and `pure` mutability keywords;
	// before it, both are spelled `constant`.
	ViewPureKeywords = MustParse("0.4.16")

	// ConstructorKeyword gates `constructor(...)`; before it, constructors
	// are functions named after their contract.
	ConstructorKeyword = MustParse("0.4.22")

	// ReceiveFunction gates the `receive() external payable` special
	// function and the split of the old unnamed fallback.
	ReceiveFunction = MustParse("0.6.0")

	// VirtualOverride gates the `virtual` and `override` markers.
	VirtualOverride = MustParse("0.6.0")

	// ImmutableState gates the `immutable` state variable mutability.
	ImmutableState = MustParse("0.6.5")

	// ConstructorVisibilityDropped marks the release that stopped
	// accepting a visibility keyword on constructors.
	ConstructorVisibilityDropped = MustParse("0.7.0")

	// UncheckedBlocks gates `unchecked { ... }`.
	UncheckedBlocks = MustParse("0.8.0")

	// CustomErrors gates `error E(...)` declarations and `revert E(...)`.
	CustomErrors = MustParse("0.8.4")

	// UserDefinedValueTypes gates `type T is V;`.
	UserDefinedValueTypes = MustParse("0.8.8")
)
