package fleet

import "sync"

var wmataRanges = []FleetRange{
	{1040, 1044, FleetSpec{Year: 2025, Make: "Nova Bus", Model: "LFSe+", Propulsion: BatteryElectric, Series: "LFS", LengthFt: 40, DisplayName: "2025 Nova Bus LFSe+"}},
	{1045, 1049, FleetSpec{Year: 2024, Make: "New Flyer", Model: "XE40", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 40}},
	{1060, 1061, FleetSpec{Year: 2024, Make: "New Flyer", Model: "XE60", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 60}},

	{6462, 6609, FleetSpec{Year: 2010, Make: "New Flyer", Model: "DE42LFA", Propulsion: DieselElectric, Series: "Low Floor Advanced", LengthFt: 42}},
	{7001, 7152, FleetSpec{Year: 2011, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{7153, 7272, FleetSpec{Year: 2012, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{7300, 7409, FleetSpec{Year: 2016, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{8001, 8105, FleetSpec{Year: 2014, Make: "NABI", Model: "42-BRT", Propulsion: DieselElectric, Series: "BRT", LengthFt: 42, DisplayName: "2014 NABI 42-BRT"}},
	{5460, 5480, FleetSpec{Year: 2015, Make: "New Flyer", Model: "XDE60", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 60}},
	{5481, 5492, FleetSpec{Year: 2018, Make: "New Flyer", Model: "XDE60", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 60}},

	{2830, 2993, FleetSpec{Year: 2015, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{3100, 3199, FleetSpec{Year: 2018, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{3200, 3274, FleetSpec{Year: 2019, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{3275, 3349, FleetSpec{Year: 2020, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},

	{4450, 4474, FleetSpec{Year: 2019, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{4475, 4499, FleetSpec{Year: 2020, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{4500, 4598, FleetSpec{Year: 2021, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{4600, 4700, FleetSpec{Year: 2022, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{4701, 4795, FleetSpec{Year: 2023, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{5500, 5541, FleetSpec{Year: 2020, Make: "New Flyer", Model: "XD60", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 60}},

	// model year not yet assigned
	{3350, 3374, FleetSpec{Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{7410, 7484, FleetSpec{Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
}

var rideOnRanges = []FleetRange{
	{5726, 5746, FleetSpec{Year: 2008, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},
	{5747, 5757, FleetSpec{Year: 2009, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},
	{5007, 5031, FleetSpec{Year: 2009, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},
	{5758, 5758, FleetSpec{Year: 2011, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},

	{5349, 5360, FleetSpec{Year: 2011, Make: "GILLIG", Model: "Hybrid", Propulsion: HybridElectric, Series: "Low Floor", LengthFt: 40}},
	{5361, 5367, FleetSpec{Year: 2012, Make: "GILLIG", Model: "Hybrid", Propulsion: HybridElectric, Series: "Low Floor", LengthFt: 40}},

	{5759, 5770, FleetSpec{Year: 2013, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},
	{5032, 5059, FleetSpec{Year: 2013, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},

	{5837, 5855, FleetSpec{Year: 2014, Make: "GILLIG", Model: "", Propulsion: CNG, Series: "Low Floor", LengthFt: 40}},
	{5060, 5091, FleetSpec{Year: 2014, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},

	{44000, 44039, FleetSpec{Year: 2016, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},
	{44040, 44056, FleetSpec{Year: 2016, Make: "GILLIG", Model: "", Propulsion: CNG, Series: "Low Floor", LengthFt: 40}},
	{42000, 42000, FleetSpec{Year: 2016, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},

	{44057, 44072, FleetSpec{Year: 2017, Make: "GILLIG", Model: "BRT Plus", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},
	{44073, 44080, FleetSpec{Year: 2017, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},

	{44081, 44118, FleetSpec{Year: 2017, Make: "GILLIG", Model: "", Propulsion: CNG, Series: "Low Floor", LengthFt: 40}},
	{44119, 44141, FleetSpec{Year: 2019, Make: "GILLIG", Model: "", Propulsion: CNG, Series: "Low Floor", LengthFt: 40}},
	{44142, 44144, FleetSpec{Year: 2019, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},

	{43000, 43003, FleetSpec{Year: 2019, Make: "Proterra", Model: "BE-35", Propulsion: BatteryElectric, Series: "Catalyst", LengthFt: 35}},

	{44145, 44153, FleetSpec{Year: 2020, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 40}},
	{42001, 42039, FleetSpec{Year: 2020, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},

	{46000, 46015, FleetSpec{Year: 2019, Make: "Nova Bus", Model: "Artic", Propulsion: Diesel, Series: "LFS", LengthFt: 60}},

	{44154, 44163, FleetSpec{Year: 2022, Make: "GILLIG", Model: "Plus EV", Propulsion: BatteryElectric, Series: "Low Floor", LengthFt: 40}},
	{44164, 44175, FleetSpec{Year: 2024, Make: "GILLIG", Model: "Plus EV", Propulsion: BatteryElectric, Series: "Low Floor", LengthFt: 40}},
	{44176, 44235, FleetSpec{Year: 2025, Make: "GILLIG", Model: "Plus EV", Propulsion: BatteryElectric, Series: "Low Floor", LengthFt: 40}},
}

var artRanges = []FleetRange{
	{5054, 5059, FleetSpec{Year: 2014, Make: "NABI", Model: "Gen III", Propulsion: CNG, Series: "LFW", LengthFt: 40}},
	{5061, 5061, FleetSpec{Year: 2014, Make: "NABI", Model: "Gen III", Propulsion: CNG, Series: "LFW", LengthFt: 40}},
	{5067, 5067, FleetSpec{Year: 2014, Make: "NABI", Model: "Gen III", Propulsion: CNG, Series: "LFW", LengthFt: 40}},
	{5092, 5099, FleetSpec{Year: 2015, Make: "NABI", Model: "Gen III", Propulsion: CNG, Series: "LFW", LengthFt: 40}},

	{5281, 5281, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{5283, 5283, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{5285, 5285, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{5287, 5287, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{5289, 5289, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{5291, 5291, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{5293, 5299, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},

	{5300, 5313, FleetSpec{Year: 2019, Make: "New Flyer", Model: "XN35", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 35}},

	{5400, 5419, FleetSpec{Year: 2022, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},

	{5314, 5328, FleetSpec{Year: 2024, Make: "GILLIG", Model: "", Propulsion: CNG, Series: "Low Floor", LengthFt: 35}},

	{5329, 5329, FleetSpec{Year: 2025, Make: "GILLIG", Model: "Plus EV", Propulsion: BatteryElectric, Series: "Low Floor", LengthFt: 35}},

	{5420, 5422, FleetSpec{Year: 2025, Make: "GILLIG", Model: "Plus EV", Propulsion: BatteryElectric, Series: "Low Floor", LengthFt: 40}},
}

var nyctaRanges = []FleetRange{
	{4343, 4702, FleetSpec{Year: 2009, Make: "Orion", Model: "07.501 HEV", Propulsion: DieselElectric, Series: "Orion VII", LengthFt: 40}},
	{9500, 9509, FleetSpec{Year: 2018, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{9416, 9499, FleetSpec{Year: 2021, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{9510, 9619, FleetSpec{Year: 2022, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{9620, 9910, FleetSpec{Year: 2021, Make: "Nova Bus", Model: "HEV", Propulsion: DieselElectric, Series: "LFS", LengthFt: 40}},

	{1202, 1289, FleetSpec{Year: 2010, Make: "Nova Bus", Model: "Artic (1st Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 62}},
	{8000, 8089, FleetSpec{Year: 2011, Make: "Nova Bus", Model: "Diesel (3rd Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 40}},
	{4710, 4799, FleetSpec{Year: 2012, Make: "New Flyer", Model: "XD60", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 60}},

	{7000, 7089, FleetSpec{Year: 2011, Make: "Orion", Model: "07.501 (3rd Generation)", Propulsion: Diesel, Series: "Orion VII", LengthFt: 40}},
	{4810, 4899, FleetSpec{Year: 2011, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},

	{5252, 5298, FleetSpec{Year: 2011, Make: "Nova Bus", Model: "Artic (1st Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 62}},
	{5300, 5363, FleetSpec{Year: 2012, Make: "Nova Bus", Model: "Artic (1st Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 62}},
	{5770, 5986, FleetSpec{Year: 2013, Make: "Nova Bus", Model: "Artic (1st Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 62}},

	{7090, 7483, FleetSpec{Year: 2014, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{8090, 8503, FleetSpec{Year: 2015, Make: "Nova Bus", Model: "Diesel (4th Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 40}},
	{5364, 5438, FleetSpec{Year: 2016, Make: "New Flyer", Model: "XD60", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 60}},
	{5987, 6125, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XD60", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 60}},
	{5439, 5602, FleetSpec{Year: 2017, Make: "Nova Bus", Model: "Artic (2nd Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 62}},
	{7484, 7850, FleetSpec{Year: 2018, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{8504, 8754, FleetSpec{Year: 2019, Make: "Nova Bus", Model: "Diesel (4th Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 40}},
	{6126, 6286, FleetSpec{Year: 2019, Make: "New Flyer", Model: "XD60", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 60}},
	{8755, 8963, FleetSpec{Year: 2021, Make: "Nova Bus", Model: "Diesel (4th Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 40}},
	{7851, 7989, FleetSpec{Year: 2021, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{9272, 9387, FleetSpec{Year: 2023, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{8964, 9271, FleetSpec{Year: 2023, Make: "Nova Bus", Model: "Diesel (4th Generation)", Propulsion: Diesel, Series: "LFS", LengthFt: 40}},
	{6287, 6510, FleetSpec{Year: 2025, Make: "New Flyer", Model: "XD60", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 60}},

	{185, 672, FleetSpec{Year: 2011, Make: "New Flyer", Model: "C40LF", Propulsion: CNG, Series: "Low Floor", LengthFt: 40}},
	{673, 810, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN40", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 40}},
	{1000, 1109, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XN60", Propulsion: CNG, Series: "Xcelsior®", LengthFt: 60}},

	{4950, 4964, FleetSpec{Year: 2019, Make: "New Flyer", Model: "XE60", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 60}},
	{4965, 5024, FleetSpec{Year: 2024, Make: "New Flyer", Model: "XE40", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 40}},
	{5030, 5216, FleetSpec{Year: 2026, Make: "New Flyer", Model: "XE40", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 40}},
	{5025, 5029, FleetSpec{Year: 2025, Make: "Nova Bus", Model: "LFSe+", Propulsion: BatteryElectric, Series: "LFS", LengthFt: 40, DisplayName: "2025 Nova Bus LFSe+"}},
	{5603, 5620, FleetSpec{Year: 2025, Make: "New Flyer", Model: "XE60", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 60}},

	{5217, 5218, FleetSpec{Year: 2025, Make: "New Flyer", Model: "XHE40", Propulsion: HydrogenFuelCell, Series: "Xcelsior CHARGE H2", LengthFt: 40}},
}

var nyctaExpressRanges = []FleetRange{
	{3000, 3474, FleetSpec{Year: 2004, Make: "Motor Coach Industries", Model: "D4500CL", Propulsion: Diesel, Series: "D-Series", LengthFt: 45}},
	{4306, 4306, FleetSpec{Year: 2004, Make: "Motor Coach Industries", Model: "D4500CL", Propulsion: Diesel, Series: "D-Series", LengthFt: 45}},
	{2195, 2250, FleetSpec{Year: 2008, Make: "Motor Coach Industries", Model: "D4500CT", Propulsion: Diesel, Series: "D-Series", LengthFt: 45}},
	{2400, 2489, FleetSpec{Year: 2011, Make: "Prevost", Model: "X3-45 Commuter (1st Generation)", Propulsion: Diesel, Series: "X-Series", LengthFt: 45}},
	{2251, 2303, FleetSpec{Year: 2012, Make: "Motor Coach Industries", Model: "D4500CT", Propulsion: Diesel, Series: "D-Series", LengthFt: 45}},
	{2490, 2789, FleetSpec{Year: 2014, Make: "Prevost", Model: "X3-45 Commuter (1st Generation)", Propulsion: Diesel, Series: "X-Series", LengthFt: 45}},
	{1300, 1629, FleetSpec{Year: 2021, Make: "Prevost", Model: "X3-45 Commuter (2nd Generation)", Propulsion: Diesel, Series: "X-Series", LengthFt: 45}},
	{1630, 2010, FleetSpec{Year: 2025, Make: "Prevost", Model: "X3-45 Commuter (2nd Generation)", Propulsion: Diesel, Series: "X-Series", LengthFt: 45}},
}

var fairfaxConnectorRanges = []FleetRange{
	{9770, 9795, FleetSpec{Year: 2008, Make: "DaimlerChrysler North America", Model: "Next Generation", Propulsion: Diesel, Series: "Orion VII", LengthFt: 30}},
	{9600, 9613, FleetSpec{Year: 2009, Make: "New Flyer", Model: "D40LFR", Propulsion: Diesel, Series: "Low Floor Restyled", LengthFt: 40}},
	{9614, 9644, FleetSpec{Year: 2010, Make: "New Flyer", Model: "D40LFR", Propulsion: Diesel, Series: "Low Floor Restyled", LengthFt: 40}},
	{9645, 9675, FleetSpec{Year: 2011, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7701, 7737, FleetSpec{Year: 2011, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7738, 7753, FleetSpec{Year: 2012, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7755, 7758, FleetSpec{Year: 2012, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{3082, 3087, FleetSpec{Year: 2012, Make: "Daimler Commercial Buses", Model: "EPA10 BRT", Propulsion: DieselElectric, Series: "Orion VII", LengthFt: 30}},
	{9676, 9690, FleetSpec{Year: 2012, Make: "New Flyer", Model: "XD35", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 35}},
	{7759, 7777, FleetSpec{Year: 2013, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7778, 7794, FleetSpec{Year: 2014, Make: "New Flyer", Model: "XD35", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 35}},
	{7795, 7799, FleetSpec{Year: 2015, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7800, 7811, FleetSpec{Year: 2015, Make: "New Flyer", Model: "XD35", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 35}},
	{1730, 1739, FleetSpec{Year: 2017, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7812, 7815, FleetSpec{Year: 2018, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7816, 7825, FleetSpec{Year: 2018, Make: "New Flyer", Model: "XD35", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 35}},
	{7826, 7829, FleetSpec{Year: 2019, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7830, 7840, FleetSpec{Year: 2020, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7841, 7868, FleetSpec{Year: 2021, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7869, 7876, FleetSpec{Year: 2022, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7877, 7892, FleetSpec{Year: 2022, Make: "New Flyer", Model: "XD35", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 35}},
	{1000, 1007, FleetSpec{Year: 2022, Make: "New Flyer", Model: "XE40", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 40}},
	{7893, 7904, FleetSpec{Year: 2023, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{1008, 1009, FleetSpec{Year: 2023, Make: "New Flyer", Model: "XE40", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 40}},
	{1010, 1011, FleetSpec{Year: 2023, Make: "New Flyer", Model: "XE35", Propulsion: BatteryElectric, Series: "Xcelsior CHARGE NG", LengthFt: 35}},
	{7905, 7950, FleetSpec{Year: 2024, Make: "New Flyer", Model: "XD40", Propulsion: Diesel, Series: "Xcelsior®", LengthFt: 40}},
	{7951, 7960, FleetSpec{Year: 2024, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},
	{7961, 7972, FleetSpec{Year: 2025, Make: "GILLIG", Model: "", Propulsion: Diesel, Series: "Low Floor", LengthFt: 29}},
	{3000, 3011, FleetSpec{Year: 2025, Make: "New Flyer", Model: "XDE40", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 40}},
	{3012, 3059, FleetSpec{Year: 2026, Make: "New Flyer", Model: "XDE35", Propulsion: DieselElectric, Series: "Xcelsior®", LengthFt: 35}},
	{1012, 1013, FleetSpec{Year: 2025, Make: "GILLIG", Model: "Plus EV", Propulsion: BatteryElectric, Series: "Low Floor", LengthFt: 40}},
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry(
		NewAgencyFleet("WMATA", "Metrobus (WMATA)", wmataRanges),
		NewAgencyFleet("RIDEON", "Ride On (MCDOT)", rideOnRanges),
		NewAgencyFleet("ART", "Arlington Transit (ART)", artRanges),
		NewAgencyFleet("FAIRFAX_CONNECTOR", "Fairfax Connector", fairfaxConnectorRanges),
		NewAgencyFleet("NYCTA", "New York City Transit Authority (NYCTA)", nyctaRanges),
		NewAgencyFleet("NYCTA_EXPRESS", "NYCTA Express Bus", nyctaExpressRanges),
	)
})

// Default returns the curated registry compiled into the binary. It is built
// on first use and shared by every caller.
func Default() *Registry { return defaultRegistry() }
