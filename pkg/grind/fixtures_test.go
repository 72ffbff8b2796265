package grind

// numericGrinder covers positions 0-4 with values 1-5.
var numericGrinder = &Grinder{
	ID:       "numeric-1",
	Name:     "Numeric Grinder",
	Numeric:  true,
	Settings: []Setting{Number(1), Number(2), Number(3), Number(4), Number(5)},
}

// numericGrinder2 covers positions 0-4 with values 10-50.
var numericGrinder2 = &Grinder{
	ID:       "numeric-2",
	Name:     "Numeric Grinder 2",
	Numeric:  true,
	Settings: []Setting{Number(10), Number(20), Number(30), Number(40), Number(50)},
}

// textGrinder covers positions 1-3.
var textGrinder = &Grinder{
	ID:      "text-1",
	Name:    "Text Grinder",
	Numeric: false,
	Settings: []Setting{
		nil,
		Label{Value: 5, Display: "Fine"},
		Label{Value: 10, Display: "Medium"},
		Label{Value: 15, Display: "Coarse"},
		nil,
	},
}

// noOverlapGrinder only has data at positions 10 and 11.
var noOverlapGrinder = &Grinder{
	ID:      "no-overlap",
	Name:    "No Overlap Grinder",
	Numeric: true,
	Settings: []Setting{
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil,
		Number(100),
		Number(110),
	},
}

var emptyGrinder = &Grinder{
	ID:       "empty",
	Name:     "Empty Grinder",
	Numeric:  true,
	Settings: []Setting{nil, nil, nil},
}

// singleGrinder has one calibration point, which is not enough to convert.
var singleGrinder = &Grinder{
	ID:       "single",
	Name:     "Single Point Grinder",
	Numeric:  true,
	Settings: []Setting{nil, Number(3)},
}

// textGrinder2 covers positions 1-4 and shares positions 1-3 with textGrinder.
var textGrinder2 = &Grinder{
	ID:      "text-2",
	Name:    "Text Grinder 2",
	Numeric: false,
	Settings: []Setting{
		nil,
		Label{Value: 1, Display: "Espresso"},
		Label{Value: 2, Display: "Drip"},
		Label{Value: 3, Display: "Filter"},
		Label{Value: 4, Display: "French press"},
	},
}
