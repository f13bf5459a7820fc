package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/ecoledger-dev/ecoverify-contract/tests/dump"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	tokenHashLE := flag.String("token", "", "Address of the Token contract (LE hex)")
	verifyHashLE := flag.String("verify", "", "Address of the Verify contract (LE hex)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	case *tokenHashLE == "":
		log.Fatal("missing Token contract address")
	case *verifyHashLE == "":
		log.Fatal("missing Verify contract address")
	}

	tokenHash, err := util.Uint160DecodeStringLE(*tokenHashLE)
	if err != nil {
		log.Fatal(fmt.Errorf("decode Token contract address: %w", err))
	}

	verifyHash, err := util.Uint160DecodeStringLE(*verifyHashLE)
	if err != nil {
		log.Fatal(fmt.Errorf("decode Verify contract address: %w", err))
	}

	const rootDir = "testdata"

	err = os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, *chainLabel, map[string]util.Uint160{
		"token":  tokenHash,
		"verify": verifyHash,
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("EcoLedger contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, contracts map[string]util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	d, err := dump.NewCreator(rootDir, dump.ID{
		Label: label,
		Block: b.currentBlock,
	})
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}

	defer d.Close()

	err = overtakeContracts(b, d, contracts)
	if err != nil {
		return err
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	return nil
}

func overtakeContracts(from *remoteBlockchain, to *dump.Creator, contracts map[string]util.Uint160) error {
	for name, h := range contracts {
		log.Printf("Processing contract '%s'...\n", name)

		ctr, err := from.getContractByHash(h)
		if err != nil {
			return fmt.Errorf("get '%s' contract state: %w", name, err)
		}

		s := to.AddContract(name, ctr)

		err = from.iterateContractStorage(ctr.Hash, s.Write)
		if err != nil {
			return fmt.Errorf("iterate '%s' contract storage: %w", name, err)
		}
	}

	return nil
}
