package dashboard

import "github.com/nurpe/agroexchange/internal/model"

// Sample market figures shown to every visitor. Nothing here is derived from real trades.

var samplePriceTrend = []PricePoint{
	{Month: "Jan", Price: 1800, Volume: 1200},
	{Month: "Feb", Price: 1850, Volume: 1100},
	{Month: "Mar", Price: 1950, Volume: 1500},
	{Month: "Apr", Price: 2100, Volume: 2200},
	{Month: "May", Price: 2300, Volume: 1800},
	{Month: "Jun", Price: 2000, Volume: 1400},
}

var sampleResidueComparison = []ResidueStat{
	{Name: "Rice Straw", Residue: model.ResidueRiceStraw, Supply: 4500, Demand: 5200, GCV: 3200},
	{Name: "Wheat Straw", Residue: model.ResidueWheatStraw, Supply: 3200, Demand: 3100, GCV: 3500},
	{Name: "Mustard Husk", Residue: model.ResidueMustardHusk, Supply: 1200, Demand: 1800, GCV: 4100},
	{Name: "Cotton Stalks", Residue: model.ResidueCottonStalks, Supply: 2100, Demand: 2500, GCV: 3800},
	{Name: "Sugarcane", Residue: model.ResidueSugarcaneTrash, Supply: 5800, Demand: 4200, GCV: 3400},
}

var sampleRegions = []Region{
	{Name: "Punjab", Districts: []District{
		{Name: "Ludhiana", Size: 1200},
		{Name: "Amritsar", Size: 800},
		{Name: "Patiala", Size: 600},
	}},
	{Name: "Haryana", Districts: []District{
		{Name: "Karnal", Size: 900},
		{Name: "Panipat", Size: 700},
	}},
	{Name: "Uttar Pradesh", Districts: []District{
		{Name: "Meerut", Size: 1500},
		{Name: "Bareilly", Size: 1100},
		{Name: "Lucknow", Size: 400},
	}},
	{Name: "Rajasthan", Districts: []District{
		{Name: "Alwar", Size: 500},
		{Name: "Ganganagar", Size: 850},
	}},
}

var sampleQuality = []QualityAxis{
	{Subject: "GCV Value", Regional: 120, Benchmark: 110, FullMark: 150},
	{Subject: "Moisture", Regional: 98, Benchmark: 130, FullMark: 150},
	{Subject: "Ash Content", Regional: 86, Benchmark: 130, FullMark: 150},
	{Subject: "Density", Regional: 99, Benchmark: 100, FullMark: 150},
	{Subject: "Logistics", Regional: 85, Benchmark: 90, FullMark: 150},
	{Subject: "Pricing", Regional: 65, Benchmark: 85, FullMark: 150},
}

var sampleMatches = []Match{
	{Name: "Kisan FPO Ludhiana", Location: "Punjab", Residue: model.ResidueRiceStraw, QuantityMT: 450, PricePerMT: 1900, Rating: 4.8},
	{Name: "Aditya Farms", Location: "Haryana", Residue: model.ResidueWheatStraw, QuantityMT: 120, PricePerMT: 2100, Rating: 4.5},
	{Name: "Jai Hind Traders", Location: "UP", Residue: model.ResidueSugarcaneTrash, QuantityMT: 800, PricePerMT: 1750, Rating: 4.2},
}

const sampleAvgPricePerMT = 1950
