// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package anchor

import (
	"encoding/hex"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/solana-toolkit/accountgen/serialization"
)

type gameState struct {
	Player solana.PublicKey
	Score  uint64
}

func TestDiscriminators(t *testing.T) {
	require := require.New(t)

	// Reference vectors from the Anchor framework.
	require.Equal("903c0a337ec2f7ce", hex.EncodeToString(discBytes(AccountDiscriminator("foo"))))
	require.Equal("8ae62232ad41e1fb", hex.EncodeToString(discBytes(MethodDiscriminator("foo"))))
	require.Equal("afaf6d1f0d989bed", hex.EncodeToString(discBytes(MethodDiscriminator("initialize"))))

	// Same name, different namespace prefix.
	require.NotEqual(AccountDiscriminator("foo"), MethodDiscriminator("foo"))

	// Deterministic across calls.
	require.Equal(AccountDiscriminator("foo"), AccountDiscriminator("foo"))
}

func discBytes(d [DiscriminatorLen]byte) []byte {
	return d[:]
}

func TestCreateAccount(t *testing.T) {
	require := require.New(t)

	programID := solana.NewWallet().PublicKey()
	player := solana.NewWallet().PublicKey()

	acct, err := CreateAccount("game_account", programID, gameState{
		Player: player,
		Score:  0,
	}, 10_000_000)
	require.NoError(err)
	require.Equal(programID, acct.Owner)
	require.Equal(uint64(10_000_000), acct.Lamports)

	disc := AccountDiscriminator("game_account")
	require.Equal(disc[:], acct.Data[:DiscriminatorLen])

	var state gameState
	require.NoError(serialization.Borsh.Decode(acct.Data[DiscriminatorLen:], &state))
	require.Equal(player, state.Player)
	require.Zero(state.Score)
}

func TestCreateAccountSerializationFailure(t *testing.T) {
	require := require.New(t)

	_, err := CreateAccount("bad", solana.NewWallet().PublicKey(), struct{ C chan int }{}, 1)
	require.ErrorIs(err, serialization.ErrSerialization)
}

func TestMutateAndReread(t *testing.T) {
	require := require.New(t)

	programID := solana.NewWallet().PublicKey()
	player := solana.NewWallet().PublicKey()

	acct, err := CreateAccount("game_account", programID, gameState{
		Player: player,
		Score:  0,
	}, 10_000_000)
	require.NoError(err)

	// Overwrite the payload region behind the discriminator in place, the
	// way a test mutates on-chain state between assertions.
	updated, err := serialization.Borsh.Encode(gameState{Player: player, Score: 100})
	require.NoError(err)
	copy(acct.Data[DiscriminatorLen:], updated)

	state, err := DeserializeAccount[gameState](acct)
	require.NoError(err)
	require.Equal(player, state.Player)
	require.Equal(uint64(100), state.Score)
}

func TestDeserializeAccountTooShort(t *testing.T) {
	require := require.New(t)

	for _, size := range []int{0, 4, DiscriminatorLen} {
		acct, err := CreateAccount("game_account", solana.NewWallet().PublicKey(), gameState{}, 1)
		require.NoError(err)
		acct.Data = acct.Data[:size]

		_, err = DeserializeAccount[gameState](acct)
		require.ErrorIs(err, ErrDataTooShort)
		require.ErrorIs(err, serialization.ErrDeserialization)
	}
}

func TestDeserializeAccountMalformed(t *testing.T) {
	require := require.New(t)

	acct, err := CreateAccount("game_account", solana.NewWallet().PublicKey(), gameState{}, 1)
	require.NoError(err)
	acct.Data = acct.Data[:DiscriminatorLen+4] // truncated payload

	_, err = DeserializeAccount[gameState](acct)
	require.ErrorIs(err, serialization.ErrDeserialization)
}

func TestCreateInstruction(t *testing.T) {
	require := require.New(t)

	programID := solana.NewWallet().PublicKey()
	gameAccount := solana.NewWallet().PublicKey()
	player := solana.NewWallet().PublicKey()

	metas := []*solana.AccountMeta{
		solana.Meta(gameAccount).WRITE(),
		solana.Meta(player).SIGNER(),
	}

	type updateScoreArgs struct {
		NewScore uint64
	}
	ix, err := CreateInstruction(programID, "update_score", metas, updateScoreArgs{NewScore: 100})
	require.NoError(err)
	require.Equal(programID, ix.ProgramID())
	require.Equal(metas, ix.Accounts())

	data, err := ix.Data()
	require.NoError(err)
	disc := MethodDiscriminator("update_score")
	require.Equal(disc[:], data[:DiscriminatorLen])

	var args updateScoreArgs
	require.NoError(serialization.Borsh.Decode(data[DiscriminatorLen:], &args))
	require.Equal(uint64(100), args.NewScore)
}

func TestCreatePDA(t *testing.T) {
	require := require.New(t)

	programID := solana.NewWallet().PublicKey()
	player := solana.NewWallet().PublicKey()
	seeds := [][]byte{[]byte("game"), player.Bytes()}

	pda, bump, acct, err := CreatePDA("game_account", programID, seeds, gameState{
		Player: player,
		Score:  0,
	}, 10_000_000)
	require.NoError(err)

	wantPDA, wantBump, err := solana.FindProgramAddress(seeds, programID)
	require.NoError(err)
	require.Equal(wantPDA, pda)
	require.Equal(wantBump, bump)
	require.Equal(programID, acct.Owner)

	disc := AccountDiscriminator("game_account")
	require.Equal(disc[:], acct.Data[:DiscriminatorLen])
}
