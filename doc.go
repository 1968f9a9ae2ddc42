/*
Package aosoa stores populations of simulation entities under interchangeable memory layouts.

An entity type is declared once, as a Layout of fields, and can then be materialized as a
single Scalar entity, a packed Vector batch of LaneWidth entities, or an SoA population holding
an ordered sequence of such batches (array of structures of arrays). Field accessors work on
every layout, so entity code is written once.

Core Concepts:

  - Field: a per-lane value or fixed-size array of per-lane values.
  - Layout: an entity type; variants derived with a Policy omit fields.
  - Lane: one entity's slot within a batch.
  - Gather: repack an arbitrary ordered subset of a population into fresh dense batches.

Basic Usage:

	type Diameter float64
	type Coord float64

	diameter := aosoa.FactoryNewField[Diameter]()
	position := aosoa.FactoryNewArrayField[Coord](3)
	cells, _ := aosoa.Factory.NewLayout("cell", diameter, position)

	// Build a population
	population := aosoa.Factory.NewSoA(cells)
	cell := aosoa.Factory.NewScalar(cells)
	for i := 0; i < 10; i++ {
		diameter.Set(cell, 0, Diameter(i))
		population.PushBack(cell)
	}

	// Pack the neighbors a spatial query found
	neighbors := aosoa.Factory.NewIndexList(9, 0, 5)
	packed := aosoa.Factory.NewAoSoA(cells)
	if err := population.Gather(neighbors, packed); err != nil {
		return err
	}
	for b := 0; b < packed.Len(); b++ {
		lanes := diameter.Batch(packed.At(b), 0)
		_ = lanes // hand to a vectorized kernel
	}

Populations are not safe for concurrent mutation; callers serialize access per population.
*/
package aosoa
