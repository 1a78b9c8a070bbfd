package zhl16

// NumCompartments is the fixed number of theoretical tissue
// compartments in the ZH-L16 family of models.
const NumCompartments = 16

// Coefficients holds the per-compartment, per-inert-gas parameters of
// the ZH-L16C table: half-time in minutes and the Bühlmann a
// (intercept, bar) and b (slope) coefficients, for nitrogen and
// helium independently.
type Coefficients struct {
	HalfTimeN2 float64
	AN2        float64
	BN2        float64
	HalfTimeHe float64
	AHe        float64
	BHe        float64
}

// Table holds the 16 Bühlmann ZH-L16C compartment coefficients, values
// from the published 1999 table. These MUST be used verbatim; do not
// "tidy" the constants.
var Table = [NumCompartments]Coefficients{
	{HalfTimeN2: 4.0, AN2: 1.2599, BN2: 0.5240, HalfTimeHe: 1.51, AHe: 1.6189, BHe: 0.4245},
	{HalfTimeN2: 8.0, AN2: 1.0000, BN2: 0.6514, HalfTimeHe: 3.02, AHe: 1.3830, BHe: 0.5747},
	{HalfTimeN2: 12.5, AN2: 0.8618, BN2: 0.7222, HalfTimeHe: 4.72, AHe: 1.1919, BHe: 0.6527},
	{HalfTimeN2: 18.5, AN2: 0.7562, BN2: 0.7825, HalfTimeHe: 6.99, AHe: 1.0458, BHe: 0.7223},
	{HalfTimeN2: 27.0, AN2: 0.6667, BN2: 0.8126, HalfTimeHe: 10.21, AHe: 0.9220, BHe: 0.7582},
	{HalfTimeN2: 38.3, AN2: 0.5600, BN2: 0.8434, HalfTimeHe: 14.48, AHe: 0.8205, BHe: 0.7957},
	{HalfTimeN2: 54.3, AN2: 0.4947, BN2: 0.8693, HalfTimeHe: 20.53, AHe: 0.7305, BHe: 0.8279},
	{HalfTimeN2: 77.0, AN2: 0.4500, BN2: 0.8910, HalfTimeHe: 29.11, AHe: 0.6502, BHe: 0.8553},
	{HalfTimeN2: 109.0, AN2: 0.4187, BN2: 0.9092, HalfTimeHe: 41.20, AHe: 0.5950, BHe: 0.8757},
	{HalfTimeN2: 146.0, AN2: 0.3798, BN2: 0.9222, HalfTimeHe: 55.19, AHe: 0.5545, BHe: 0.8903},
	{HalfTimeN2: 187.0, AN2: 0.3497, BN2: 0.9319, HalfTimeHe: 70.69, AHe: 0.5333, BHe: 0.8997},
	{HalfTimeN2: 239.0, AN2: 0.3223, BN2: 0.9403, HalfTimeHe: 90.34, AHe: 0.5189, BHe: 0.9073},
	{HalfTimeN2: 305.0, AN2: 0.2850, BN2: 0.9477, HalfTimeHe: 115.29, AHe: 0.5181, BHe: 0.9122},
	{HalfTimeN2: 390.0, AN2: 0.2737, BN2: 0.9544, HalfTimeHe: 147.42, AHe: 0.5176, BHe: 0.9171},
	{HalfTimeN2: 498.0, AN2: 0.2523, BN2: 0.9602, HalfTimeHe: 188.24, AHe: 0.5172, BHe: 0.9217},
	{HalfTimeN2: 635.0, AN2: 0.2327, BN2: 0.9653, HalfTimeHe: 240.03, AHe: 0.5119, BHe: 0.9267},
}
