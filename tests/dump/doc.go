/*
Package dump provides I/O operations for collected states of the EcoLedger
smart contracts.

State collection (including storage) allows you to emulate work with a "live"
contract pair pulled from a production network. First of all, it is in demand
for testing contract updates against real data. For state reproducibility, it
is necessary to be able to persist (dump) information about the contract along
with its data, as well as read ready-made dumps.

The package works with dumps stored in the file system using human-readable
encoding.
*/
package dump
