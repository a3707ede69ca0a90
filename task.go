package aesctr

// BlockTask is one independent unit of CTR work: a counter value, the
// round-key schedule it must use, the backend that will run it, and an
// exclusive sub-slice of the caller's buffer (I2: tasks produced by the
// same Decompose call never alias each other's Data). Running Encrypt on
// every task produced by one Decompose call, in any order or concurrently,
// produces the same result as xorKeystream would have serially.
type BlockTask struct {
	Counter  IV
	Data     []byte
	schedule *Schedule
	backend  Backend
}

// Encrypt XORs this task's keystream block into its Data slice in place.
// CTR mode makes this the same operation whether the caller is encrypting
// or decrypting.
func (t *BlockTask) Encrypt() {
	ks := reverseBlock(t.backend.Encrypt([16]byte(t.Counter), t.schedule))
	for i := range t.Data {
		t.Data[i] ^= ks[i]
	}
}

// Decompose splits buf into independent BlockTasks suitable for handing to
// a Pool's Scope (spec §4.2's decompose/BlockTask contract). If iv is nil a
// fresh random IV is generated; otherwise *iv is used as the starting
// counter. The final task's Data may be shorter than BlockSize (partial
// final block, spec §8 scenario 5); every other task's Data is exactly
// BlockSize bytes.
func Decompose(buf []byte, key []byte, iv *IV) ([]*BlockTask, IV, error) {
	if err := validateBuffer(buf, "buf"); err != nil {
		return nil, IV{}, err
	}
	if err := validateKey(key); err != nil {
		panic(err)
	}

	var use IV
	if iv == nil {
		generated, err := randomIV()
		if err != nil {
			return nil, IV{}, err
		}
		use = generated
	} else {
		use = *iv
	}

	sched, err := expandKey(key)
	if err != nil {
		return nil, IV{}, err
	}
	backend := Pick(BackendAuto)

	numBlocks := (len(buf) + BlockSize - 1) / BlockSize
	tasks := make([]*BlockTask, 0, numBlocks)
	counter := use
	for offset := 0; offset < len(buf); offset += BlockSize {
		end := offset + BlockSize
		if end > len(buf) {
			end = len(buf)
		}
		tasks = append(tasks, &BlockTask{
			Counter:  counter,
			Data:     buf[offset:end],
			schedule: sched,
			backend:  backend,
		})
		counter = counter.Add(1)
	}
	return tasks, use, nil
}
