package aosoa

// gather repacks the entities of src at indices into out, in index order.
// Indices and layouts are validated before out is touched.
func gather(src gatherSource, indices IndexList, out *AoSoA) error {
	if src == gatherSource(out) {
		return AliasError{}
	}
	n := indices.Len()
	elements := src.Elements()
	for i := 0; i < n; i++ {
		if index := indices.At(i); !src.holds(index) {
			err := IndexOutOfRangeError{Index: index, Elements: elements}
			Config.logger.Debug().Err(err).Int("position", i).Msg("gather rejected")
			return err
		}
	}
	if out.layout == nil {
		out.layout = src.Layout()
	}
	plan, err := planCopy(src.Layout(), out.layout)
	if err != nil {
		Config.logger.Debug().Err(err).Msg("gather rejected")
		return err
	}

	batches, last := batchesFor(n)
	if err := out.SetSize(batches); err != nil {
		return err
	}
	for b := 0; b < batches; b++ {
		occupancy := LaneWidth
		if b == batches-1 {
			occupancy = last
		}
		out.batches[b].size = occupancy
	}

	var dest *Vector
	for i := 0; i < n; i++ {
		srcBatch, srcLane := decode(indices.At(i))
		destBatch, destLane := decode(i)
		if destLane == 0 {
			dest = &out.batches[destBatch]
		}
		store, local := src.storeFor(srcBatch)
		plan.copy(&dest.store, 0, destLane, store, local, srcLane)
	}

	Config.logger.Debug().
		Str("source", src.Layout().Name()).
		Str("destination", out.layout.Name()).
		Int("gathered", n).
		Int("batches", batches).
		Msg("gather complete")
	return nil
}
